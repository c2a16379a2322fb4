package mock

import (
	"context"

	"github.com/scoutkit/mailscout"
)

var _ mailscout.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of mailscout.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) *mailscout.FetchOutcome
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) *mailscout.FetchOutcome {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
