// Package dnscheck queries live DNS to verify that provider-side records
// are visible to resolvers.
package dnscheck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/miekg/dns"

	"github.com/REOL/cloudflare/pkg/api"
)

// Default resolver settings.
const (
	// DefaultServer is the resolver queried when none is configured.
	DefaultServer = "1.1.1.1:53"

	// DefaultTimeout is the query timeout.
	DefaultTimeout = 5 * time.Second
)

// ErrUnsupportedType is returned when a record type cannot be queried.
var ErrUnsupportedType = errors.New("unsupported record type for lookup")

// queryTypes maps API record types to DNS query types.
var queryTypes = map[api.RecordType]uint16{
	api.RecordTypeA:     dns.TypeA,
	api.RecordTypeCNAME: dns.TypeCNAME,
	api.RecordTypeMX:    dns.TypeMX,
	api.RecordTypeTXT:   dns.TypeTXT,
	api.RecordTypeSPF:   dns.TypeSPF,
	api.RecordTypeAAAA:  dns.TypeAAAA,
	api.RecordTypeNS:    dns.TypeNS,
	api.RecordTypeSRV:   dns.TypeSRV,
	api.RecordTypeLOC:   dns.TypeLOC,
}

// Resolver performs DNS lookups against a single configured server.
type Resolver struct {
	server string
	client *dns.Client
	logger *slog.Logger
}

// Option is a functional option for configuring the Resolver.
type Option func(*Resolver)

// WithServer sets the resolver address (host:port).
func WithServer(server string) Option {
	return func(r *Resolver) {
		if server != "" {
			r.server = server
		}
	}
}

// WithTimeout sets the query timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(r *Resolver) {
		if timeout > 0 {
			r.client.Timeout = timeout
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Resolver querying the default server over UDP.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		server: DefaultServer,
		client: &dns.Client{
			Net:     "udp",
			Timeout: DefaultTimeout,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Lookup queries the resolver for name with the given record type and
// returns the answer values as strings (addresses, targets, or text).
func (r *Resolver) Lookup(ctx context.Context, name string, recordType api.RecordType) ([]string, error) {
	qtype, ok := queryTypes[recordType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, recordType)
	}

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), qtype)
	msg.RecursionDesired = true

	resp, _, err := r.client.ExchangeContext(ctx, msg, r.server)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", r.server, err)
	}

	if resp.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("query for %s returned %s", name, dns.RcodeToString[resp.Rcode])
	}

	var values []string
	for _, rr := range resp.Answer {
		if v := answerValue(rr); v != "" {
			values = append(values, v)
		}
	}

	r.logger.Debug("resolved name",
		slog.String("name", name),
		slog.String("type", string(recordType)),
		slog.Int("answers", len(values)),
	)

	return values, nil
}

// Verify reports whether rec's content is visible in live DNS. Records
// without content cannot be compared and report false.
func (r *Resolver) Verify(ctx context.Context, rec api.Record) (bool, error) {
	if rec.Content == "" {
		return false, nil
	}

	values, err := r.Lookup(ctx, rec.Name, rec.Type)
	if err != nil {
		return false, err
	}

	want := strings.TrimSuffix(rec.Content, ".")
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true, nil
		}
	}
	return false, nil
}

// answerValue extracts the comparable value from an answer record.
func answerValue(rr dns.RR) string {
	switch v := rr.(type) {
	case *dns.A:
		return v.A.String()
	case *dns.AAAA:
		return v.AAAA.String()
	case *dns.CNAME:
		return strings.TrimSuffix(v.Target, ".")
	case *dns.MX:
		return strings.TrimSuffix(v.Mx, ".")
	case *dns.NS:
		return strings.TrimSuffix(v.Ns, ".")
	case *dns.TXT:
		return strings.Join(v.Txt, "")
	case *dns.SPF:
		return strings.Join(v.Txt, "")
	case *dns.SRV:
		return strings.TrimSuffix(v.Target, ".")
	case *dns.LOC:
		return strings.TrimSpace(strings.TrimPrefix(v.String(), v.Hdr.String()))
	default:
		return ""
	}
}
