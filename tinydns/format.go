package tinydns

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteZone writes the record set as a BIND zone file. Record types are
// emitted in a fixed order: SOA, NS, MX, A, CNAME.
func WriteZone(w io.Writer, rs *RecordSet) error {
	if rs == nil || rs.SOA == nil {
		return ErrNoSOA
	}

	bw := bufio.NewWriter(w)
	soa := rs.SOA

	fmt.Fprintf(bw, "$ORIGIN %s.\n", rs.Domain)
	fmt.Fprintf(bw, "$TTL %s\n", rs.TTL)
	fmt.Fprintf(bw, "@\t\t\tIN SOA %s %s (%s %s %s %s %s)\n",
		soa.Nameserver, soa.Email, soa.Serial, soa.Refresh, soa.Retry, soa.Expire, soa.TTL)

	// NS and MX inherit the @ owner from the SOA line
	for _, ns := range rs.NS {
		fmt.Fprintf(bw, "\t\t\tIN NS %s\n", ns.TargetHostname)
	}

	for _, mx := range rs.MX {
		fmt.Fprintf(bw, "\t\t\tIN MX %s %s\n", mx.Priority, mx.TargetHostname)
	}

	for _, a := range rs.A {
		fmt.Fprintf(bw, "%s\t\t\tIN A %s\n", ownerName(a.Hostname), a.IP)
	}

	for _, cname := range rs.CNAME {
		fmt.Fprintf(bw, "%s\t\t\tIN CNAME %s.\n", ownerName(cname.Hostname), strings.TrimSuffix(cname.TargetHostname, LabelSeparator))
	}

	return bw.Flush()
}

// ownerName keeps an empty hostname from inheriting the previous line's owner
func ownerName(host string) string {
	if host == "" {
		return "@"
	}
	return host
}
