// Package tinydns converts tinydns-style data files into BIND9 zone files.
// It supports the Z (SOA), & (NS), @ (MX), + (A) and C (CNAME) line types.
// Lines starting with any other character are skipped and reported in the
// resulting RecordSet.
package tinydns

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"djbdns2bind/internal/logging"
)

// Parser holds the parsing state
type Parser struct {
	defaultTTL string
}

// Option configures a Parser
type Option func(*Parser)

// WithDefaultTTL sets the zone TTL used when the SOA ttl field is empty
func WithDefaultTTL(ttl string) Option {
	return func(p *Parser) {
		if ttl != "" {
			p.defaultTTL = ttl
		}
	}
}

// NewParser creates a new data file parser
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		defaultTTL: DefaultTTL,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseString parses data already held in memory
func (p *Parser) ParseString(ctx context.Context, text string) (*RecordSet, error) {
	return p.Parse(ctx, strings.NewReader(text))
}

// Parse reads all lines from r and returns the parsed record set
func (p *Parser) Parse(ctx context.Context, r io.Reader) (*RecordSet, error) {
	log := logging.FromContext(ctx)
	rs := NewRecordSet()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialLineSize), MaxLineSize)
	scanner.Split(scanLines)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		// Skip empty lines
		if line == "" {
			continue
		}

		fields := strings.Split(line, FieldSeparator)
		reg := Register(line[0])

		if !isKnownRegister(reg) {
			log.Debug(ctx, "skipping line with unknown register", "line", lineNum, "register", string(rune(reg)))
			rs.Skipped = append(rs.Skipped, SkippedLine{Line: lineNum, Text: line})
			continue
		}

		rec, err := p.parseRecord(reg, fields, lineNum)
		if err != nil {
			return nil, err
		}

		if soa, ok := rec.(*SOARecord); ok {
			if rs.SOA != nil {
				log.Warn(ctx, "replacing earlier SOA record", "line", lineNum, "previous", rs.Domain, "domain", soa.Domain)
			}
			rs.Domain = soa.Domain
			rs.TTL = soa.TTL
			if rs.TTL == "" {
				rs.TTL = p.defaultTTL
			}
		}

		rs.add(rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading data: %w", err)
	}

	if rs.SOA == nil {
		return nil, ErrNoSOA
	}

	counts := rs.Counts()
	log.Info(ctx, "parsed data",
		"domain", rs.Domain,
		"lines", lineNum,
		"ns", counts[TypeNS],
		"mx", counts[TypeMX],
		"a", counts[TypeA],
		"cname", counts[TypeCNAME],
		"skipped", len(rs.Skipped),
	)

	return rs, nil
}
