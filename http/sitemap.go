package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/scoutkit/mailscout"
)

// Ensure SitemapService implements mailscout.SitemapService.
var _ mailscout.SitemapService = (*SitemapService)(nil)

// Bounds for the sitemap probe. A sitemap is a hint source, not a crawl
// frontier, so both the number of sitemap files and the number of returned
// URLs are capped.
const (
	maxSitemapFiles = 5
	maxContactURLs  = 24
)

// contactPathWords mark sitemap URLs that plausibly carry contact details.
var contactPathWords = []string{
	"about",
	"team",
	"people",
	"contact",
	"support",
	"press",
	"careers",
	"company",
}

// SitemapService discovers extra crawl targets from a site's sitemap.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverContactURLs finds sitemap URLs on the origin's host whose paths
// suggest contact, team, or company pages. Sitemap locations come from
// robots.txt Sitemap: directives, falling back to /sitemap.xml. Sitemap
// indexes are resolved one level at a time until the file cap is reached.
func (s *SitemapService) DiscoverContactURLs(ctx context.Context, origin string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("invalid origin: %w", err)
	}

	sitemapURLs, err := s.findSitemapURLs(ctx, base)
	if err != nil {
		return nil, err
	}

	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)
	var contacts []string

	queue := sitemapURLs
	for len(queue) > 0 && len(seenSitemaps) < maxSitemapFiles && len(contacts) < maxContactURLs {
		sitemapURL := queue[0]
		queue = queue[1:]
		if seenSitemaps[sitemapURL] {
			continue
		}
		seenSitemaps[sitemapURL] = true

		pageURLs, childSitemaps, err := s.parseSitemap(ctx, sitemapURL)
		if err != nil {
			// A broken sitemap file is not fatal to the probe.
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		queue = append(queue, childSitemaps...)

		for _, u := range pageURLs {
			if len(contacts) >= maxContactURLs {
				break
			}
			if seenURLs[u] {
				continue
			}
			seenURLs[u] = true
			if isContactURL(u, base.Hostname()) {
				contacts = append(contacts, u)
			}
		}
	}

	return contacts, nil
}

// isContactURL reports whether u is on host and has a contact-ish path.
func isContactURL(rawURL, host string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if !strings.EqualFold(parsed.Hostname(), host) {
		return false
	}

	path := strings.ToLower(parsed.Path)
	for _, word := range contactPathWords {
		if strings.Contains(path, word) {
			return true
		}
	}
	return false
}

// findSitemapURLs discovers sitemap URLs from robots.txt or falls back to
// /sitemap.xml.
func (s *SitemapService) findSitemapURLs(ctx context.Context, base *url.URL) ([]string, error) {
	robotsURL := base.ResolveReference(&url.URL{Path: "/robots.txt"})
	sitemaps, err := s.parseSitemapsFromRobots(ctx, robotsURL.String())
	if err == nil && len(sitemaps) > 0 {
		return sitemaps, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return []string{base.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()}, nil
}

// parseSitemapsFromRobots extracts Sitemap: directives from robots.txt.
func (s *SitemapService) parseSitemapsFromRobots(ctx context.Context, robotsURL string) ([]string, error) {
	body, err := s.fetchURL(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			sitemapURL := strings.TrimSpace(line[len("sitemap:"):])
			if sitemapURL != "" {
				sitemaps = append(sitemaps, sitemapURL)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}

	return sitemaps, nil
}

// parseSitemap fetches one sitemap file and returns its page URLs and, for
// sitemap indexes, the child sitemap URLs.
func (s *SitemapService) parseSitemap(ctx context.Context, sitemapURL string) (pageURLs, childSitemaps []string, err error) {
	body, err := s.fetchURL(ctx, sitemapURL)
	if err != nil {
		return nil, nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, nil, fmt.Errorf("parsing sitemap XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, nil, fmt.Errorf("empty sitemap XML")
	}

	if root.Tag == "sitemapindex" {
		for _, sitemap := range root.SelectElements("sitemap") {
			if loc := locText(sitemap); loc != "" {
				childSitemaps = append(childSitemaps, loc)
			}
		}
		return nil, childSitemaps, nil
	}

	for _, urlEl := range root.SelectElements("url") {
		if loc := locText(urlEl); loc != "" {
			pageURLs = append(pageURLs, loc)
		}
	}
	return pageURLs, nil, nil
}

// locText returns the trimmed <loc> child text of an element.
func locText(el *etree.Element) string {
	loc := el.SelectElement("loc")
	if loc == nil {
		return ""
	}
	return strings.TrimSpace(loc.Text())
}

// fetchURL fetches a URL and returns the response body.
func (s *SitemapService) fetchURL(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, targetURL)
	}

	return resp.Body, nil
}
