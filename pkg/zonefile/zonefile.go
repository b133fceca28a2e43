// Package zonefile renders provider records as BIND-style zone file text.
package zonefile

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/miekg/dns"

	"github.com/REOL/cloudflare/pkg/api"
)

// ExportTTL is substituted for records with a provider-managed TTL, which
// has no concrete second value on the provider side.
const ExportTTL = 300

// Format renders records as zone file text for the given zone. Every line
// is validated through the DNS RR parser; records that cannot be expressed
// as a resource record (missing content, incomplete rdata) are emitted as
// comments instead of being dropped silently.
func Format(zone string, records []api.Record) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, ";; zone %s, exported %s\n", zone, time.Now().UTC().Format(time.RFC3339))
	fmt.Fprintf(&sb, "$ORIGIN %s\n", dns.Fqdn(zone))

	for _, rec := range records {
		if rec.Content == "" {
			fmt.Fprintf(&sb, ";; skipped %s %s: no content returned by provider\n", rec.Name, rec.Type)
			continue
		}

		ttl := rec.TTL
		if ttl <= api.TTLAutomatic {
			ttl = ExportTTL
		}

		content := rec.Content
		switch rec.Type {
		case api.RecordTypeTXT, api.RecordTypeSPF:
			content = strconv.Quote(content)
		}

		line := fmt.Sprintf("%s %d IN %s %s", dns.Fqdn(rec.Name), ttl, rec.Type, content)
		rr, err := dns.NewRR(line)
		if err != nil {
			fmt.Fprintf(&sb, ";; skipped %s %s: %v\n", rec.Name, rec.Type, err)
			continue
		}

		sb.WriteString(rr.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
