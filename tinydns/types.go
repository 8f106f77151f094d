package tinydns

// Register is the leading character of a data line identifying its record type
type Register byte

const (
	RegisterSOA   Register = 'Z'
	RegisterNS    Register = '&'
	RegisterMX    Register = '@'
	RegisterA     Register = '+'
	RegisterCNAME Register = 'C'
)

// RecordType names a BIND record type
type RecordType string

const (
	TypeSOA   RecordType = "SOA"
	TypeNS    RecordType = "NS"
	TypeMX    RecordType = "MX"
	TypeA     RecordType = "A"
	TypeCNAME RecordType = "CNAME"
)

// Record is implemented by every parsed record
type Record interface {
	Type() RecordType
}

// SOARecord represents a Z line (start of authority)
type SOARecord struct {
	Domain     string
	Nameserver string
	Email      string
	Serial     string
	Refresh    string
	Retry      string
	Expire     string
	Minimum    string
	TTL        string
}

// NSRecord represents an & line (name server)
type NSRecord struct {
	Hostname       string
	IP             string
	TargetHostname string
}

// MXRecord represents an @ line (mail exchange)
type MXRecord struct {
	Hostname       string
	IP             string
	TargetHostname string
	Priority       string
}

// ARecord represents a + line. Hostname is relative to the zone origin.
type ARecord struct {
	Hostname string
	IP       string
}

// CNAMERecord represents a C line. Hostname is relative to the zone origin.
type CNAMERecord struct {
	Hostname       string
	TargetHostname string
}

func (SOARecord) Type() RecordType   { return TypeSOA }
func (NSRecord) Type() RecordType    { return TypeNS }
func (MXRecord) Type() RecordType    { return TypeMX }
func (ARecord) Type() RecordType     { return TypeA }
func (CNAMERecord) Type() RecordType { return TypeCNAME }

// SkippedLine is a non-empty line whose register was not recognized
type SkippedLine struct {
	Line int
	Text string
}

// RecordSet holds everything parsed from one data file
type RecordSet struct {
	// Zone origin and default TTL, derived from the SOA line
	Domain string
	TTL    string

	SOA   *SOARecord
	NS    []NSRecord
	MX    []MXRecord
	A     []ARecord
	CNAME []CNAMERecord

	Skipped []SkippedLine
}

// NewRecordSet returns an empty record set with every sequence initialized
func NewRecordSet() *RecordSet {
	return &RecordSet{
		NS:      make([]NSRecord, 0),
		MX:      make([]MXRecord, 0),
		A:       make([]ARecord, 0),
		CNAME:   make([]CNAMERecord, 0),
		Skipped: make([]SkippedLine, 0),
	}
}

// add appends a parsed record to its sequence
func (rs *RecordSet) add(rec Record) {
	switch r := rec.(type) {
	case *SOARecord:
		rs.SOA = r
	case NSRecord:
		rs.NS = append(rs.NS, r)
	case MXRecord:
		rs.MX = append(rs.MX, r)
	case ARecord:
		rs.A = append(rs.A, r)
	case CNAMERecord:
		rs.CNAME = append(rs.CNAME, r)
	}
}

// Counts returns the number of records per type
func (rs *RecordSet) Counts() map[RecordType]int {
	soa := 0
	if rs.SOA != nil {
		soa = 1
	}
	return map[RecordType]int{
		TypeSOA:   soa,
		TypeNS:    len(rs.NS),
		TypeMX:    len(rs.MX),
		TypeA:     len(rs.A),
		TypeCNAME: len(rs.CNAME),
	}
}
