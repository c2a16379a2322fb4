package mailscout

// EmailHit is one address discovery event on a single page: the sanitized
// address, the page it came from, a contextual snippet, and the method that
// found it.
type EmailHit struct {
	Email   string
	URL     string
	Context string
	Via     Via
}

// Extractor finds email address evidence in page markup. Implementations run
// two independent scans (mailto hyperlinks and free-text matches), sanitize
// every candidate, and deduplicate within the page per scan method.
type Extractor interface {
	// Extract scans the markup fetched from pageURL and returns hits in
	// discovery order: mailto hits first, then text hits.
	Extract(html string, pageURL string) ([]EmailHit, error)
}
