package mailscout

import "context"

// FetchOutcome is the result of one page retrieval. A failed fetch is data,
// not a Go error: the crawl loop records it and moves on to the next target.
type FetchOutcome struct {
	URL string

	// OK is true only for 2xx responses whose body was read successfully.
	OK bool

	// Status is the HTTP status code, or 0 when no response was received
	// (timeout, DNS failure, connection refused).
	Status int

	// Err holds a human-readable failure description when OK is false.
	Err string

	// Body is the full response body. Only populated when OK is true.
	Body string
}

// Fetcher performs single bounded-time page retrievals.
type Fetcher interface {
	// Fetch issues one GET for the URL. It never panics and never returns a
	// Go error; every outcome, including timeouts and network failures, is
	// represented in the returned FetchOutcome.
	Fetch(ctx context.Context, url string) *FetchOutcome

	// Close releases client resources.
	Close() error
}
