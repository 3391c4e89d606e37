// Package rest provides provider.JobBoardClient and provider.HRISClient
// implementations for providers exposing JSON REST APIs.
package rest

import (
	"atsconnect/pkg/domain"
	"atsconnect/pkg/metrics"
	"atsconnect/pkg/provider"
	"atsconnect/pkg/serrors"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const errorBodyLimit = 500

// Options configures a Client.
type Options struct {
	// HTTPClient performs the requests. A client with Timeout is created when nil.
	HTTPClient *http.Client
	// Timeout bounds a single request when HTTPClient is nil.
	Timeout time.Duration
	// RateLimit is the steady number of requests per second per provider.
	RateLimit rate.Limit
	// Burst is the token bucket size per provider.
	Burst int
	// Metrics records provider calls. Optional.
	Metrics *metrics.Recorder
}

// Client talks to provider REST APIs. Requests to the same provider share a
// token bucket. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	limit      rate.Limit
	burst      int
	metrics    *metrics.Recorder

	mu       sync.Mutex
	limiters map[domain.Provider]*rate.Limiter
}

var (
	_ provider.JobBoardClient = (*Client)(nil)
	_ provider.HRISClient     = (*Client)(nil)
)

// New constructs a Client.
func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	limit := opts.RateLimit
	if limit <= 0 {
		limit = rate.Inf
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		httpClient: httpClient,
		limit:      limit,
		burst:      burst,
		metrics:    opts.Metrics,
		limiters:   map[domain.Provider]*rate.Limiter{},
	}
}

func (c *Client) limiter(p domain.Provider) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	l, ok := c.limiters[p]
	if !ok {
		l = rate.NewLimiter(c.limit, c.burst)
		c.limiters[p] = l
	}

	return l
}

func (c *Client) CreatePosting(ctx context.Context,
	conn provider.Connection,
	payload map[string]any) (provider.PostingResult, error) {
	var out map[string]any
	if err := c.call(ctx, conn, http.MethodPost, pathOf(conn, "postings"), "", payload, &out); err != nil {
		return provider.PostingResult{}, err
	}

	return postingResult(out, "")
}

func (c *Client) UpdatePosting(ctx context.Context,
	conn provider.Connection,
	externalID string,
	payload map[string]any) (provider.PostingResult, error) {
	var out map[string]any
	if err := c.call(ctx, conn, http.MethodPut, pathOf(conn, "posting"), externalID, payload, &out); err != nil {
		return provider.PostingResult{}, err
	}

	return postingResult(out, externalID)
}

func (c *Client) ClosePosting(ctx context.Context, conn provider.Connection, externalID string) error {
	return c.call(ctx, conn, http.MethodDelete, pathOf(conn, "posting"), externalID, nil, nil)
}

func (c *Client) ListApplications(ctx context.Context,
	conn provider.Connection,
	externalID string,
	since time.Time) ([]provider.Record, error) {
	return c.list(ctx, conn, withSince(pathOf(conn, "applications"), since), externalID)
}

func (c *Client) UpsertEmployee(ctx context.Context, conn provider.Connection, payload map[string]any) (string, error) {
	return c.upsert(ctx, conn, pathOf(conn, "employees"), payload)
}

func (c *Client) UpsertDepartment(ctx context.Context,
	conn provider.Connection,
	payload map[string]any) (string, error) {
	return c.upsert(ctx, conn, pathOf(conn, "departments"), payload)
}

func (c *Client) ListEmployees(ctx context.Context,
	conn provider.Connection,
	since time.Time) ([]provider.Record, error) {
	return c.list(ctx, conn, withSince(pathOf(conn, "employees"), since), "")
}

func (c *Client) upsert(ctx context.Context,
	conn provider.Connection,
	path string,
	payload map[string]any) (string, error) {
	var out map[string]any
	if err := c.call(ctx, conn, http.MethodPost, path, "", payload, &out); err != nil {
		return "", err
	}

	return firstString(out, "id", "externalId", "employeeId", "workerId"), nil
}

func (c *Client) list(ctx context.Context, conn provider.Connection, path, id string) ([]provider.Record, error) {
	var raw json.RawMessage
	if err := c.call(ctx, conn, http.MethodGet, path, id, nil, &raw); err != nil {
		return nil, err
	}

	items, err := unwrapList(raw)
	if err != nil {
		return nil, err
	}

	records := make([]provider.Record, 0, len(items))
	for _, item := range items {
		var keyed map[string]any
		if err := json.Unmarshal(item, &keyed); err != nil {
			return nil, fmt.Errorf("could not decode list item: %w", err)
		}
		externalID := firstString(keyed, "id", "externalId", "applicationId", "employeeId")
		if externalID == "" {
			continue
		}
		records = append(records, provider.Record{ExternalID: externalID, Payload: item})
	}

	return records, nil
}

// call sends one JSON request. out may be nil, a *json.RawMessage or any
// value json can decode into.
func (c *Client) call(ctx context.Context,
	conn provider.Connection,
	method, path, id string,
	body any,
	out any) (err error) {
	defer func() {
		c.metrics.ProviderCall(ctx, string(conn.Provider), err)
	}()

	spec, ok := provider.Lookup(conn.Provider)
	if !ok {
		return serrors.With(serrors.ErrConfiguration, "unknown provider %q", conn.Provider)
	}
	if path == "" {
		return serrors.With(serrors.ErrConfiguration, "provider %q does not support this operation", conn.Provider)
	}

	target, err := buildURL(spec, conn, path, id)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	authorize(req, spec, conn)

	if err := c.limiter(conn.Provider).Wait(ctx); err != nil {
		return fmt.Errorf("could not wait for rate limiter: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return serrors.With(serrors.ErrRateLimited,
			"%s rate limited (retry after %q): %s", conn.Provider, resp.Header.Get("Retry-After"), trim(b))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s failed with status %d: %s", method, conn.Provider, resp.StatusCode, trim(b))
	}

	if out == nil || len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}

	return nil
}

func authorize(req *http.Request, spec provider.Spec, conn provider.Connection) {
	if conn.AccessToken != "" {
		(&oauth2.Token{AccessToken: conn.AccessToken, TokenType: "Bearer"}).SetAuthHeader(req)

		return
	}
	if conn.APIKey == "" {
		return
	}

	switch spec.Auth {
	case provider.AuthBasic:
		req.SetBasicAuth(conn.APIKey, "x")
	case provider.AuthHeader:
		req.Header.Set(spec.APIKeyHeader, conn.APIKey)
	}
}

func pathOf(conn provider.Connection, op string) string {
	spec, ok := provider.Lookup(conn.Provider)
	if !ok {
		return ""
	}

	switch op {
	case "postings":
		return spec.Paths.Postings
	case "posting":
		return spec.Paths.Posting
	case "applications":
		return spec.Paths.Applications
	case "employees":
		return spec.Paths.Employees
	case "departments":
		return spec.Paths.Departments
	}

	return ""
}

func buildURL(spec provider.Spec, conn provider.Connection, path, id string) (string, error) {
	base := conn.BaseURL
	if base == "" {
		base = spec.BaseURL
	}
	if base == "" {
		return "", serrors.With(serrors.ErrConfiguration, "no base url configured for %s", conn.Provider)
	}

	if conn.CompanyID == "" && strings.Contains(base+path, "{company}") {
		return "", serrors.With(serrors.ErrConfiguration, "%s requires a company id", conn.Provider)
	}

	r := strings.NewReplacer("{id}", url.PathEscape(id), "{company}", url.PathEscape(conn.CompanyID))
	target := strings.TrimRight(r.Replace(base), "/") + r.Replace(path)
	if _, err := url.Parse(target); err != nil {
		return "", serrors.Wrap(serrors.ErrConfiguration, err, "invalid %s url", conn.Provider)
	}

	return target, nil
}

func withSince(path string, since time.Time) string {
	if path == "" || since.IsZero() {
		return path
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}

	return path + sep + "since=" + url.QueryEscape(since.UTC().Format(time.RFC3339))
}

func postingResult(out map[string]any, fallbackID string) (provider.PostingResult, error) {
	id := firstString(out, "id", "externalId", "jobId", "job_id", "postingId")
	if id == "" {
		id = fallbackID
	}
	if id == "" {
		return provider.PostingResult{}, errors.New("provider response did not include a posting id")
	}

	return provider.PostingResult{
		ExternalID: id,
		URL:        firstString(out, "url", "jobUrl", "job_url", "hostedUrl"),
		Raw:        out,
	}, nil
}

func unwrapList(raw json.RawMessage) ([]json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}

	var items []json.RawMessage
	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("could not decode list: %w", err)
		}

		return items, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("could not decode list envelope: %w", err)
	}
	for _, key := range []string{"data", "items", "results", "applications", "employees", "workers"} {
		if inner, ok := envelope[key]; ok {
			return unwrapList(inner)
		}
	}

	return nil, nil
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return fmt.Sprintf("%.0f", v)
		}
	}

	return ""
}

func trim(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > errorBodyLimit {
		return s[:errorBodyLimit]
	}

	return s
}
