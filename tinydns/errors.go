package tinydns

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSOA is returned when no Z line was found, or a record set without SOA is formatted
	ErrNoSOA = errors.New("no SOA record found")

	// ErrInvalidDomain is returned when the SOA name yields no usable zone domain
	ErrInvalidDomain = errors.New("SOA main domain is invalid")

	// ErrMalformedRecord matches every *MalformedRecordError
	ErrMalformedRecord = errors.New("malformed record")
)

// MalformedRecordError reports a recognized line with too few fields
type MalformedRecordError struct {
	Type RecordType
	Line int
	Want int
	Got  int
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record of type %s at line %d: want %d fields, got %d", e.Type, e.Line, e.Want, e.Got)
}

func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}
