package tinydns

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/miekg/dns"
)

// Configuration constants
const (
	// DefaultTTL is used as the zone TTL when the SOA line leaves its ttl field empty
	DefaultTTL = "3600"

	FieldSeparator = ":"
	LabelSeparator = "."

	// MaxLineSize bounds a single data line, skipped lines included
	MaxLineSize     = 16 * 1024 * 1024
	initialLineSize = 64 * 1024

	// Labels kept as the zone domain when a name has subdomains
	zoneLabels = 2
)

// fieldCounts is the number of colon separated fields each register needs
var fieldCounts = map[Register]int{
	RegisterSOA:   9, // fqdn:nameserver:email:serial:refresh:retry:expire:minimum:ttl
	RegisterNS:    3, // hostname:ip:targetHostname
	RegisterMX:    4, // hostname:ip:targetHostname:priority
	RegisterA:     2, // hostname:ip
	RegisterCNAME: 2, // hostname:targetHostname
}

// registerTypes maps a register to the record type it produces
var registerTypes = map[Register]RecordType{
	RegisterSOA:   TypeSOA,
	RegisterNS:    TypeNS,
	RegisterMX:    TypeMX,
	RegisterA:     TypeA,
	RegisterCNAME: TypeCNAME,
}

// isKnownRegister checks if a register names a supported record type
func isKnownRegister(r Register) bool {
	_, ok := registerTypes[r]
	return ok
}

// splitLabels splits a name into labels, ignoring one trailing dot
func splitLabels(fqdn string) []string {
	fqdn = strings.TrimSuffix(fqdn, LabelSeparator)
	if fqdn == "" {
		return nil
	}
	return strings.Split(fqdn, LabelSeparator)
}

// DeriveDomain returns the zone domain of a name: the last two labels when
// the name has subdomains, otherwise the whole name.
func DeriveDomain(fqdn string) (string, error) {
	labels := splitLabels(fqdn)
	if len(labels) == 0 {
		return "", fmt.Errorf("%w: empty name", ErrInvalidDomain)
	}

	if len(labels) > zoneLabels {
		labels = labels[len(labels)-zoneLabels:]
	}
	domain := strings.Join(labels, LabelSeparator)

	if _, ok := dns.IsDomainName(domain); !ok || strings.Contains(domain, "..") || strings.HasPrefix(domain, LabelSeparator) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDomain, domain)
	}
	return domain, nil
}

// DeriveHost returns the part of a name relative to its zone domain. Names
// without subdomains are returned whole with a trailing dot.
func DeriveHost(fqdn string) string {
	labels := splitLabels(fqdn)
	if len(labels) == 0 {
		return ""
	}

	if len(labels) > zoneLabels {
		return strings.Join(labels[:len(labels)-zoneLabels], LabelSeparator)
	}
	return strings.Join(labels, LabelSeparator) + LabelSeparator
}

// scanLines is a bufio.SplitFunc accepting \n, \r\n and bare \r terminators
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// \r at the end of the buffer may be the first half of \r\n
		if i+1 == len(data) && !atEOF {
			return 0, nil, nil
		}
		if i+1 < len(data) && data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}
		return i + 1, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
