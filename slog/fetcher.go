// Package slog provides logging decorators for the mailscout interfaces
// using the standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/scoutkit/mailscout"
)

// Ensure LoggingFetcher implements mailscout.Fetcher.
var _ mailscout.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-request logging.
type LoggingFetcher struct {
	next   mailscout.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next mailscout.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) *mailscout.FetchOutcome {
	begin := time.Now()
	out := f.next.Fetch(ctx, url)

	if out.OK {
		f.logger.Info("fetch",
			"url", url,
			"status", out.Status,
			"bytes", len(out.Body),
			"duration", time.Since(begin),
		)
	} else {
		f.logger.Info("fetch",
			"url", url,
			"status", out.Status,
			"err", out.Err,
			"duration", time.Since(begin),
		)
	}
	return out
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
