// Package api implements a client for the legacy Cloudflare client API:
// a single GET endpoint where every action, parameter, and credential is
// carried in the query string and every response is a JSON envelope.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/REOL/cloudflare/internal/metrics"
	"github.com/REOL/cloudflare/pkg/dnsname"
)

// DefaultMaxPages bounds the pagination chain of a single List call. The
// provider reports a has_more flag with no upper bound of its own; a zone
// that never stops reporting more pages would otherwise loop forever.
const DefaultMaxPages = 50

// Client is a legacy Cloudflare API client. Operations are synchronous
// blocking call chains with no internal retry; concurrent calls run as
// fully independent request chains.
type Client struct {
	endpoint   string
	email      string
	key        string
	maxPages   int
	httpClient *http.Client
	logger     *slog.Logger
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithEndpoint sets a custom API endpoint (useful for testing).
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMaxPages overrides the pagination bound for List calls.
func WithMaxPages(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxPages = n
		}
	}
}

// New creates a client authenticating with the account email and API key.
func New(email, key string, opts ...Option) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		email:    email,
		key:      key,
		maxPages: DefaultMaxPages,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// call sends one API request and interprets the response envelope.
func (c *Client) call(ctx context.Context, params url.Values) (json.RawMessage, error) {
	body, err := c.sendRequest(ctx, params)
	if err != nil {
		return nil, err
	}
	return interpretResponse(body)
}

// List retrieves the records of the zone containing domainOrSubdomain,
// filtered to names containing domainOrSubdomain as a substring and, when
// recordType is non-empty, to that record type. Pagination is followed
// until the provider stops reporting more pages; records are returned in
// first-seen order with duplicates by name dropped.
func (c *Client) List(ctx context.Context, domainOrSubdomain, recordType string) ([]Record, error) {
	var filter RecordType
	if recordType != "" {
		rt, err := ParseRecordType(recordType)
		if err != nil {
			return nil, err
		}
		filter = rt
	}

	zone := dnsname.ExtractDomain(domainOrSubdomain)
	store := newRecordStore()
	seen := 0

	for page := 0; ; page++ {
		if page >= c.maxPages {
			return nil, fmt.Errorf("listing zone %s: pagination did not terminate after %d pages", zone, c.maxPages)
		}

		params := url.Values{}
		params.Set("a", actionLoadAll)
		params.Set("z", zone)
		if page > 0 {
			params.Set("o", strconv.Itoa(seen))
		}

		payload, err := c.call(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("listing zone %s: %w", zone, err)
		}

		var recs recordsPayload
		if err := json.Unmarshal(payload, &recs); err != nil {
			return nil, fmt.Errorf("parsing records response: %w", err)
		}

		for _, obj := range recs.Recs.Objs {
			rec := obj.toRecord()
			// Plain substring match, as the legacy API client always
			// behaved. Not a label-boundary test.
			if !strings.Contains(rec.Name, domainOrSubdomain) {
				continue
			}
			if filter != "" && rec.Type != filter {
				continue
			}
			store.add(rec)
		}

		seen += len(recs.Recs.Objs)
		metrics.PagesFetchedTotal.Inc()

		if !recs.Recs.HasMore {
			break
		}
	}

	c.logger.Debug("listed records",
		slog.String("zone", zone),
		slog.String("name", domainOrSubdomain),
		slog.Int("count", store.len()),
	)

	return store.records(), nil
}

// CreateOptions holds the optional parameters of Create. Zero values mean
// type A, automatic TTL, and no priority.
type CreateOptions struct {
	Type     string
	TTL      int
	Priority int
}

// Create adds a record named name with the given content and returns a
// fresh listing for name reflecting the provider state; the creation
// response body itself is not used.
//
// Content must be a syntactically valid IP address literal regardless of
// record type. The legacy client always enforced this, even for CNAME and
// TXT records whose content is not an address.
func (c *Client) Create(ctx context.Context, name, content string, opts CreateOptions) ([]Record, error) {
	if name == "" {
		return nil, fmt.Errorf("record name is required: %w", ErrInvalidInput)
	}
	if content == "" {
		return nil, fmt.Errorf("record content is required: %w", ErrInvalidInput)
	}

	typeStr := opts.Type
	if typeStr == "" {
		typeStr = string(RecordTypeA)
	}
	rt, err := ParseRecordType(typeStr)
	if err != nil {
		return nil, err
	}

	if net.ParseIP(content) == nil {
		return nil, fmt.Errorf("content %q is not a valid IP address: %w", content, ErrInvalidInput)
	}

	ttl := opts.TTL
	if ttl == 0 {
		ttl = TTLAutomatic
	}

	zone := strings.ToLower(dnsname.ExtractDomain(name))
	subdomain := strings.ToLower(dnsname.ExtractSubdomain(name))

	params := url.Values{}
	params.Set("a", actionNew)
	params.Set("z", zone)
	params.Set("type", string(rt))
	params.Set("name", subdomain)
	params.Set("content", content)
	params.Set("ttl", strconv.Itoa(ttl))
	if opts.Priority != 0 {
		params.Set("prio", strconv.Itoa(opts.Priority))
	}

	if _, err := c.call(ctx, params); err != nil {
		return nil, fmt.Errorf("creating record %s: %w", name, err)
	}

	c.logger.Info("created record",
		slog.String("name", name),
		slog.String("type", string(rt)),
		slog.String("content", content),
		slog.Int("ttl", ttl),
	)

	return c.List(ctx, name, "")
}

// Delete removes every record whose name matches domainOrSubdomain (and
// recordType, when non-empty), one deletion request per matched record.
// It stops at the first failed deletion with no rollback of earlier ones.
//
// Deleting the bare registrable domain's A record (or all of its types) is
// refused. The provider may apply deletions with latency, so a List issued
// immediately afterwards can still show the removed records.
func (c *Client) Delete(ctx context.Context, domainOrSubdomain, recordType string) error {
	var rt RecordType
	if recordType != "" {
		parsed, err := ParseRecordType(recordType)
		if err != nil {
			return err
		}
		rt = parsed
	}

	zone := dnsname.ExtractDomain(domainOrSubdomain)
	if strings.EqualFold(domainOrSubdomain, zone) && (rt == "" || rt == RecordTypeA) {
		return fmt.Errorf("refusing to delete the apex record for %s: %w", domainOrSubdomain, ErrInvalidInput)
	}

	records, err := c.List(ctx, domainOrSubdomain, recordType)
	if err != nil {
		return err
	}

	for _, rec := range records {
		params := url.Values{}
		params.Set("a", actionDelete)
		params.Set("z", zone)
		params.Set("id", rec.ID)

		if _, err := c.call(ctx, params); err != nil {
			return fmt.Errorf("deleting record %s (id %s): %w", rec.Name, rec.ID, err)
		}

		c.logger.Info("deleted record",
			slog.String("name", rec.Name),
			slog.String("type", string(rec.Type)),
			slog.String("id", rec.ID),
		)
	}

	return nil
}
