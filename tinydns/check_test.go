package tinydns

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckZoneAcceptsGeneratedZone(t *testing.T) {
	input := exampleData + `@example.com:1.2.3.5:mail.example.com:10
+example.com:5.6.7.10
+mail.staging.example.com:5.6.7.11
`
	rs, err := NewParser().ParseString(context.Background(), input)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteZone(&buf, rs))

	rrs, err := CheckZone(&buf, rs.Domain)
	require.NoError(t, err)
	require.Len(t, rrs, 7)

	soa, ok := rrs[0].(*dns.SOA)
	require.True(t, ok, "first record should be SOA, got %T", rrs[0])
	assert.Equal(t, "example.com.", soa.Hdr.Name)
	assert.Equal(t, uint32(1), soa.Serial)
	assert.Equal(t, uint32(3600), soa.Hdr.Ttl)

	ns, ok := rrs[1].(*dns.NS)
	require.True(t, ok, "second record should be NS, got %T", rrs[1])
	assert.Equal(t, "example.com.", ns.Hdr.Name)
	assert.Equal(t, "ns1.example.com.example.com.", ns.Ns)

	mx, ok := rrs[2].(*dns.MX)
	require.True(t, ok, "third record should be MX, got %T", rrs[2])
	assert.Equal(t, uint16(10), mx.Preference)

	var names []string
	for _, rr := range rrs[3:] {
		names = append(names, rr.Header().Name)
	}
	assert.Equal(t, []string{"www.example.com.", "example.com.", "mail.staging.example.com.", "blog.example.com."}, names)

	cname, ok := rrs[6].(*dns.CNAME)
	require.True(t, ok, "last record should be CNAME, got %T", rrs[6])
	assert.Equal(t, "www.example.com.", cname.Target)
}

func TestCheckZoneRejectsInvalidSyntax(t *testing.T) {
	zone := "$ORIGIN example.com.\n$TTL 3600\n@ IN SOA ns1 hostmaster (one 2 3 4 5)\n"

	_, err := CheckZone(strings.NewReader(zone), "example.com")
	assert.Error(t, err)
}

func TestCheckZoneRejectsNonNumericSOA(t *testing.T) {
	input := "Zexample.com:ns1.example.com:hostmaster.example.com:serial:7200:3600:1209600:3600:3600\n"
	rs, err := NewParser().ParseString(context.Background(), input)
	require.NoError(t, err, "parsing keeps SOA fields verbatim")

	var buf bytes.Buffer
	require.NoError(t, WriteZone(&buf, rs))

	_, err = CheckZone(&buf, rs.Domain)
	assert.Error(t, err)
}

func TestCheckZoneEmptyHostStaysAtApex(t *testing.T) {
	rs, err := NewParser().ParseString(context.Background(), exampleData+"+:9.9.9.9\n")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteZone(&buf, rs))

	rrs, err := CheckZone(&buf, rs.Domain)
	require.NoError(t, err)

	var owner string
	for _, rr := range rrs {
		if a, ok := rr.(*dns.A); ok && a.A.String() == "9.9.9.9" {
			owner = a.Hdr.Name
		}
	}
	assert.Equal(t, "example.com.", owner, "record must not inherit the previous owner")
}
