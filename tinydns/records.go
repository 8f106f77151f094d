package tinydns

import (
	"fmt"
)

// parseRecord handles parsing of a single line for a known register.
// fields[0] still carries the register character.
func (p *Parser) parseRecord(reg Register, fields []string, lineNum int) (Record, error) {
	if want := fieldCounts[reg]; len(fields) < want {
		return nil, &MalformedRecordError{
			Type: registerTypes[reg],
			Line: lineNum,
			Want: want,
			Got:  len(fields),
		}
	}

	name := fields[0][1:]

	switch reg {
	case RegisterSOA:
		return p.parseSOARecord(name, fields, lineNum)

	case RegisterNS:
		// NS owner is kept as written
		return NSRecord{
			Hostname:       name,
			IP:             fields[1],
			TargetHostname: fields[2],
		}, nil

	case RegisterMX:
		return MXRecord{
			Hostname:       name,
			IP:             fields[1],
			TargetHostname: fields[2],
			Priority:       fields[3],
		}, nil

	case RegisterA:
		return ARecord{
			Hostname: DeriveHost(name),
			IP:       fields[1],
		}, nil

	case RegisterCNAME:
		return CNAMERecord{
			Hostname:       DeriveHost(name),
			TargetHostname: fields[1],
		}, nil
	}

	return nil, fmt.Errorf("unsupported register %q", reg)
}

// parseSOARecord parses a Z line: fqdn:nameserver:email:serial:refresh:retry:expire:minimum:ttl
func (p *Parser) parseSOARecord(name string, fields []string, lineNum int) (*SOARecord, error) {
	domain, err := DeriveDomain(name)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNum, err)
	}

	return &SOARecord{
		Domain:     domain,
		Nameserver: fields[1],
		Email:      fields[2],
		Serial:     fields[3],
		Refresh:    fields[4],
		Retry:      fields[5],
		Expire:     fields[6],
		Minimum:    fields[7],
		TTL:        fields[8],
	}, nil
}
