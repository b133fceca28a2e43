package api

import (
	"fmt"
	"strings"
)

// RecordType is a DNS record type accepted by the legacy API.
type RecordType string

// Record types supported by the legacy API.
const (
	RecordTypeA     RecordType = "A"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeMX    RecordType = "MX"
	RecordTypeTXT   RecordType = "TXT"
	RecordTypeSPF   RecordType = "SPF"
	RecordTypeAAAA  RecordType = "AAAA"
	RecordTypeNS    RecordType = "NS"
	RecordTypeSRV   RecordType = "SRV"
	RecordTypeLOC   RecordType = "LOC"
)

// TTLAutomatic is the TTL sentinel meaning the provider picks the TTL.
const TTLAutomatic = 1

// recordTypes is the full set of accepted record types.
var recordTypes = map[RecordType]bool{
	RecordTypeA:     true,
	RecordTypeCNAME: true,
	RecordTypeMX:    true,
	RecordTypeTXT:   true,
	RecordTypeSPF:   true,
	RecordTypeAAAA:  true,
	RecordTypeNS:    true,
	RecordTypeSRV:   true,
	RecordTypeLOC:   true,
}

// ParseRecordType normalizes s to upper case and validates it against the
// accepted set. Unknown types return an error wrapping ErrInvalidInput.
func ParseRecordType(s string) (RecordType, error) {
	rt := RecordType(strings.ToUpper(s))
	if !recordTypes[rt] {
		return "", fmt.Errorf("unknown record type %q: %w", s, ErrInvalidInput)
	}
	return rt, nil
}

// Record is one provider-side DNS record.
type Record struct {
	// ID is the opaque provider identifier, assigned on creation.
	ID string

	// Type is the record type (A, CNAME, MX, ...).
	Type RecordType

	// Name is the fully qualified domain name the record answers for.
	// It always contains the registrable domain as a suffix.
	Name string

	// TTL is the time-to-live in seconds, or TTLAutomatic.
	TTL int

	// Content is the provider-specific value (IP address, target host,
	// text). Empty when the provider did not return one.
	Content string
}
