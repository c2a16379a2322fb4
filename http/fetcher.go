// Package http provides HTTP-based implementations of mailscout.Fetcher and
// mailscout.SitemapService for retrieving public pages over the network.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/scoutkit/mailscout"
)

// DefaultFetchTimeout bounds every page retrieval. A slow contact page is not
// worth stalling the whole crawl for.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the crawler to origin servers.
const DefaultUserAgent = "mailscout/1.0 (+https://github.com/scoutkit/mailscout)"

// Ensure Fetcher implements mailscout.Fetcher at compile time.
var _ mailscout.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages with a single bounded-time GET per URL. Failures
// are reported as values in the FetchOutcome, never as Go errors, so the
// crawl loop can record them and continue.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithClient sets a custom http.Client. The fetcher still applies its own
// timeout to the client.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{}
	}
	f.client.Timeout = f.timeout

	return f
}

// Fetch issues one GET for the URL and reports the outcome. Non-2xx
// responses have their status recorded but the body is not read.
func (f *Fetcher) Fetch(ctx context.Context, url string) *mailscout.FetchOutcome {
	out := &mailscout.FetchOutcome{URL: url}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		out.Err = failureMessage(err)
		return out
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	// Every probe must hit the origin, not a cache.
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := f.client.Do(req)
	if err != nil {
		out.Err = failureMessage(err)
		return out
	}
	defer resp.Body.Close()

	out.Status = resp.StatusCode
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		out.Err = fmt.Sprintf("HTTP %d for %s", resp.StatusCode, url)
		return out
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		out.Err = failureMessage(err)
		return out
	}

	out.OK = true
	out.Body = string(body)
	return out
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// failureMessage maps a transport error to the message recorded in the crawl
// summary. Timeouts get a fixed message so callers can recognize them.
func failureMessage(err error) string {
	if err == nil {
		return "Unknown fetch error"
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "Request timed out"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "Request timed out"
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Unknown fetch error"
}
