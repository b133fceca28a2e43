// Package dnsname extracts the registrable domain and subdomain prefix
// from fully qualified domain names.
package dnsname

import (
	"regexp"
	"strings"
)

// domainPattern matches the last two labels of a hostname: a 2-64 character
// alphanumeric/hyphen label followed by a 2-6 character TLD. Dots are allowed
// inside the TLD part so multi-part TLDs like co.uk are captured whole.
var domainPattern = regexp.MustCompile(`[a-zA-Z0-9-]{2,64}\.[a-zA-Z.]{2,6}$`)

// ExtractDomain returns the registrable domain (name plus TLD) of input.
// If input does not match the expected hostname shape, input is returned
// unchanged so callers always get some zone string back. Case is preserved.
func ExtractDomain(input string) string {
	if m := domainPattern.FindString(input); m != "" {
		return m
	}
	return input
}

// ExtractSubdomain returns the part of input before its registrable domain,
// with the trailing separator stripped. Returns "" when input is already
// a bare registrable domain.
func ExtractSubdomain(input string) string {
	domain := ExtractDomain(input)
	idx := strings.Index(input, domain)
	if idx <= 0 {
		return ""
	}
	return strings.TrimSuffix(input[:idx], ".")
}
