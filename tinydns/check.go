package tinydns

import (
	"fmt"
	"io"

	"github.com/miekg/dns"
)

// CheckZone parses zone text the way a name server would and returns the
// resource records it contains. origin is used for names in the text that
// are not fully qualified.
func CheckZone(r io.Reader, origin string) ([]dns.RR, error) {
	zp := dns.NewZoneParser(r, dns.Fqdn(origin), "")
	results := []dns.RR{}

	for rr, ok := zp.Next(); ok; rr, ok = zp.Next() {
		results = append(results, rr)
	}

	if err := zp.Err(); err != nil {
		return results, fmt.Errorf("zone check failed: %w", err)
	}
	return results, nil
}
