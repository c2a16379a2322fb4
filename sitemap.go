package mailscout

import "context"

// SitemapService discovers additional crawl targets from a site's sitemap.
// It is an optional supplement to the fixed target list: when configured, the
// crawler appends its results before the target cap is applied.
type SitemapService interface {
	// DiscoverContactURLs finds sitemap URLs on the origin's own host whose
	// paths suggest contact, team, or company pages. It checks robots.txt
	// for sitemap directives and falls back to /sitemap.xml. The returned
	// list is deduplicated and bounded.
	DiscoverContactURLs(ctx context.Context, origin string) ([]string, error)
}
