// Package goquery provides the goquery-based implementation of
// mailscout.Extractor: a structured scan over mailto hyperlinks and an
// unstructured scan over the page's visible text.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mcnijman/go-emailaddress"
	"github.com/scoutkit/mailscout"
	"golang.org/x/net/html"
)

// Ensure Extractor implements mailscout.Extractor at compile time.
var _ mailscout.Extractor = (*Extractor)(nil)

// contextWindow is the number of characters of surrounding text captured on
// each side of a free-text match.
const contextWindow = 60

// mailtoAncestorLevels is how far up from a mailto link the context search
// climbs before giving up.
const mailtoAncestorLevels = 2

// textEmailPattern matches localpart@host.tld shapes in visible text. The
// final label must be at least two letters, optionally followed by one more
// dotted label (e.g. .co.uk).
var textEmailPattern = regexp.MustCompile(`(?i)[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}(?:\.[a-z]{2,})?`)

// imageExtensions mark regex matches that are actually asset filenames
// (logo@2x.png and friends), not addresses.
var imageExtensions = []string{".png", ".jpg"}

// Extractor finds email address evidence in page markup.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract runs both scans over the markup and returns sanitized hits in
// discovery order: mailto hits first, then text hits. Each scan keeps only
// the first occurrence of an address within the page.
func (e *Extractor) Extract(pageHTML string, pageURL string) ([]mailscout.EmailHit, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil, err
	}

	hits := e.scanMailtoLinks(doc, pageURL)
	hits = append(hits, e.scanText(doc, pageURL)...)
	return hits, nil
}

// scanMailtoLinks finds every hyperlink with a mailto scheme and extracts
// the address plus the nearest non-empty text as context.
func (e *Extractor) scanMailtoLinks(doc *goquery.Document, pageURL string) []mailscout.EmailHit {
	seen := make(map[string]bool)
	var hits []mailscout.EmailHit

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if !strings.HasPrefix(strings.ToLower(href), "mailto:") {
			return
		}

		addr := href[len("mailto:"):]
		if i := strings.Index(addr, "?"); i >= 0 {
			addr = addr[:i]
		}

		addr, ok := sanitizeEmail(addr)
		if !ok || seen[addr] {
			return
		}
		seen[addr] = true

		hits = append(hits, mailscout.EmailHit{
			Email:   addr,
			URL:     pageURL,
			Context: mailtoContext(s),
			Via:     mailscout.ViaMailto,
		})
	})

	return hits
}

// scanText runs the email pattern over the page's visible text and captures
// a surrounding snippet for every match.
func (e *Extractor) scanText(doc *goquery.Document, pageURL string) []mailscout.EmailHit {
	text := visibleText(doc)
	seen := make(map[string]bool)
	var hits []mailscout.EmailHit

	for _, m := range textEmailPattern.FindAllStringIndex(text, -1) {
		addr, ok := sanitizeEmail(text[m[0]:m[1]])
		if !ok || seen[addr] {
			continue
		}
		seen[addr] = true

		hits = append(hits, mailscout.EmailHit{
			Email:   addr,
			URL:     pageURL,
			Context: snippet(text, m[0], m[1]),
			Via:     mailscout.ViaText,
		})
	}

	return hits
}

// sanitizeEmail normalizes a candidate address and reports whether it should
// be kept. Filename lookalikes, placeholder-domain addresses, and anything
// that fails syntactic validation are dropped.
func sanitizeEmail(raw string) (string, bool) {
	addr := strings.ToLower(strings.TrimSpace(raw))
	if addr == "" {
		return "", false
	}
	for _, ext := range imageExtensions {
		if strings.HasSuffix(addr, ext) {
			return "", false
		}
	}
	if strings.Contains(addr, "example.com") {
		return "", false
	}
	if _, err := emailaddress.Parse(addr); err != nil {
		return "", false
	}
	return addr, true
}

// mailtoContext returns the link's own text, or failing that the text of up
// to two enclosing elements. Returns "" when no non-empty text is found.
func mailtoContext(s *goquery.Selection) string {
	if text := collapseWhitespace(s.Text()); text != "" {
		return text
	}

	ancestor := s.Parent()
	for level := 0; level < mailtoAncestorLevels && ancestor.Length() > 0; level++ {
		if text := collapseWhitespace(ancestor.Text()); text != "" {
			return text
		}
		ancestor = ancestor.Parent()
	}
	return ""
}

// visibleText renders the document's text content, skipping subtrees that a
// browser would never display.
func visibleText(doc *goquery.Document) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "template", "iframe":
				return
			}
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}
	return b.String()
}

// snippet extracts a whitespace-collapsed window around a match.
func snippet(text string, start, end int) string {
	lo := start - contextWindow
	if lo < 0 {
		lo = 0
	}
	hi := end + contextWindow
	if hi > len(text) {
		hi = len(text)
	}
	return collapseWhitespace(text[lo:hi])
}

// collapseWhitespace squashes all whitespace runs to single spaces and trims.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
