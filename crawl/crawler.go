// Package crawl orchestrates email discovery runs: it expands a domain into
// candidate URLs, fetches them one at a time, funnels extracted addresses
// through the relevance filter into the evidence aggregate, and assembles
// the final report.
package crawl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/scoutkit/mailscout"
)

// DefaultMaxTargets caps the number of pages fetched per run. The cap is a
// hard ceiling on crawl volume, not negotiable per request.
const DefaultMaxTargets = 12

// ProgressEvent reports the outcome of one target as the crawl proceeds.
type ProgressEvent struct {
	URL   string
	Index int // 1-based position in the target list
	Total int
	OK    bool
	Err   string
}

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Crawler runs email discovery for a domain. Fetcher and Extractor are
// required; the rest is optional.
type Crawler struct {
	Fetcher   mailscout.Fetcher
	Extractor mailscout.Extractor

	// Sitemaps, when set, contributes extra contact-page targets discovered
	// from the site's sitemap, appended before the target cap applies.
	Sitemaps mailscout.SitemapService

	// Limiter, when set, paces fetches to the target host.
	Limiter mailscout.HostLimiter

	// Logger receives per-target diagnostics. Nil discards them.
	Logger *slog.Logger

	// MaxTargets overrides DefaultMaxTargets when positive.
	MaxTargets int
}

// Run executes one discovery request. Validation and normalization failures
// are returned as coded errors before any crawling begins; once crawling
// starts, per-page failures are recorded in the report and never abort the
// run. The progress callback, if provided, receives one event per target.
func (c *Crawler) Run(ctx context.Context, req *mailscout.Request, progress ProgressFunc) (*mailscout.Report, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	domain, err := mailscout.NormalizeDomain(req.Domain)
	if err != nil {
		return nil, err
	}

	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("run", uuid.NewString(), "host", domain.Host)

	targets := c.collectTargets(ctx, domain, req.Keywords, logger)

	agg := NewAggregate()
	summaries := make([]mailscout.CrawlSummary, 0, len(targets))

	for i, target := range targets {
		summary := c.crawlTarget(ctx, target, domain.Host, agg, logger)
		summaries = append(summaries, summary)

		if progress != nil {
			progress(ProgressEvent{
				URL:   target,
				Index: i + 1,
				Total: len(targets),
				OK:    summary.OK,
				Err:   summary.Error,
			})
		}
	}

	named := mailscout.NamedPatterns(req.FirstName, req.LastName, domain.Host)
	for _, cand := range named {
		if agg.Has(cand.Email) {
			continue
		}
		agg.Add(mailscout.EmailHit{
			Email:   cand.Email,
			Context: cand.Description,
			Via:     mailscout.ViaPattern,
		})
	}

	logger.Info("run complete",
		"targets", len(targets),
		"addresses", agg.Len(),
		"named_patterns", len(named),
	)

	return &mailscout.Report{
		Domain:   domain.Host,
		Results:  agg.Results(),
		Patterns: mailscout.PatternLabels(domain.Host, named),
		Crawled:  summaries,
	}, nil
}

// collectTargets builds the capped target list: fixed and keyword paths
// first, then optional sitemap discoveries.
func (c *Crawler) collectTargets(ctx context.Context, domain *mailscout.Domain, keywords []string, logger *slog.Logger) []string {
	targets := Targets(domain.Origin, keywords)

	if c.Sitemaps != nil {
		extra, err := c.Sitemaps.DiscoverContactURLs(ctx, domain.Origin)
		if err != nil {
			logger.Warn("sitemap probe failed", "err", err)
		}
		seen := make(map[string]bool, len(targets))
		for _, t := range targets {
			seen[t] = true
		}
		for _, t := range extra {
			if !seen[t] {
				seen[t] = true
				targets = append(targets, t)
			}
		}
	}

	max := c.MaxTargets
	if max <= 0 {
		max = DefaultMaxTargets
	}
	if len(targets) > max {
		targets = targets[:max]
	}
	return targets
}

// crawlTarget fetches one URL, extracts and aggregates its relevant
// addresses, and returns the target's crawl summary. Every failure mode is
// captured in the summary; nothing propagates.
func (c *Crawler) crawlTarget(ctx context.Context, target, host string, agg *Aggregate, logger *slog.Logger) mailscout.CrawlSummary {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx, host); err != nil {
			return mailscout.CrawlSummary{URL: target, Error: err.Error()}
		}
	}

	out := c.Fetcher.Fetch(ctx, target)
	summary := mailscout.CrawlSummary{
		URL:    target,
		Status: out.Status,
		OK:     out.OK,
		Error:  out.Err,
	}
	if !out.OK {
		logger.Info("fetch failed", "url", target, "status", out.Status, "err", out.Err)
		return summary
	}
	summary.Fingerprint = fmt.Sprintf("%016x", xxhash.Sum64String(out.Body))

	hits, err := c.Extractor.Extract(out.Body, target)
	if err != nil {
		logger.Warn("extraction failed", "url", target, "err", err)
		return summary
	}

	kept := 0
	for _, hit := range hits {
		if !mailscout.Relevant(hit.Email, host) {
			continue
		}
		agg.Add(hit)
		kept++
	}

	logger.Info("page crawled",
		"url", target,
		"status", out.Status,
		"bytes", len(out.Body),
		"hits", len(hits),
		"kept", kept,
	)
	return summary
}
