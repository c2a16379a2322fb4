package crawl

import (
	"net/url"
	"regexp"
	"strings"
)

// defaultPaths are the relative paths probed on every domain, in order.
// These are where organizations conventionally publish contact details.
var defaultPaths = []string{
	"/",
	"/about",
	"/about-us",
	"/company",
	"/team",
	"/our-team",
	"/people",
	"/contact",
	"/contact-us",
	"/support",
	"/press",
	"/careers",
	"/jobs",
}

// keywordPathTemplates expand each sanitized keyword into extra paths.
var keywordPathTemplates = []string{
	"/%s",
	"/team/%s",
	"/contact/%s",
	"/departments/%s",
	"/people/%s",
}

var nonAlphanumericRuns = regexp.MustCompile(`[^a-z0-9]+`)

// slugifyKeyword lowercases a keyword and replaces every run of
// non-alphanumeric characters with a single hyphen. Returns "" for keywords
// with no usable characters.
func slugifyKeyword(keyword string) string {
	slug := nonAlphanumericRuns.ReplaceAllString(strings.ToLower(keyword), "-")
	return strings.Trim(slug, "-")
}

// Targets expands the fixed path list plus keyword-derived paths into
// absolute candidate URLs resolved against origin. The result is
// deduplicated and keeps insertion order: fixed paths first, then keyword
// paths in keyword order. Callers cap the crawl volume separately.
func Targets(origin string, keywords []string) []string {
	base, err := url.Parse(origin)
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var targets []string
	add := func(path string) {
		target := base.ResolveReference(&url.URL{Path: path}).String()
		if seen[target] {
			return
		}
		seen[target] = true
		targets = append(targets, target)
	}

	for _, path := range defaultPaths {
		add(path)
	}

	for _, keyword := range keywords {
		slug := slugifyKeyword(keyword)
		if slug == "" {
			continue
		}
		for _, tmpl := range keywordPathTemplates {
			add(strings.Replace(tmpl, "%s", slug, 1))
		}
	}

	return targets
}
