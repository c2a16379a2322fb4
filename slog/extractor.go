package slog

import (
	"log/slog"
	"time"

	"github.com/scoutkit/mailscout"
)

// Ensure LoggingExtractor implements mailscout.Extractor.
var _ mailscout.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with per-page logging.
type LoggingExtractor struct {
	next   mailscout.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next mailscout.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the hit count.
func (e *LoggingExtractor) Extract(html string, pageURL string) ([]mailscout.EmailHit, error) {
	begin := time.Now()
	hits, err := e.next.Extract(html, pageURL)
	if err != nil {
		e.logger.Error("extract", "url", pageURL, "err", err)
		return nil, err
	}

	e.logger.Debug("extract",
		"url", pageURL,
		"hits", len(hits),
		"duration", time.Since(begin),
	)
	return hits, nil
}
