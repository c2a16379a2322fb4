package mailscout

// Via identifies how an email address was discovered.
type Via string

// Discovery methods, in decreasing order of evidence strength.
const (
	ViaMailto  Via = "mailto"  // found in a mailto: hyperlink
	ViaText    Via = "text"    // matched in page text
	ViaPattern Via = "pattern" // synthesized from naming conventions
)

// EmailSource records a single discovery event for an address.
// It is never mutated after creation.
type EmailSource struct {
	// URL is the page the address was found on. Empty for pattern guesses.
	URL string `json:"url,omitempty"`

	// Context is a short human-readable snippet surrounding the discovery:
	// the link text for mailto hits, a text window for text hits, and the
	// convention description for pattern guesses. Empty when unavailable.
	Context string `json:"context,omitempty"`

	Via Via `json:"via"`
}

// Confidence is the three-tier likelihood label attached to each result.
type Confidence string

// Confidence tiers.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Weight returns the sort weight of the confidence tier (higher sorts first).
func (c Confidence) Weight() int {
	switch c {
	case ConfidenceHigh:
		return 2
	case ConfidenceMedium:
		return 1
	default:
		return 0
	}
}

// EmailResult is the externally visible view of one discovered or guessed
// address, with its confidence tier and a human-readable justification.
type EmailResult struct {
	Email      string        `json:"email"`
	Confidence Confidence    `json:"confidence"`
	Reason     string        `json:"reason"`
	Sources    []EmailSource `json:"sources"`
}

// CrawlSummary is the per-target crawl diagnostic. One is emitted for every
// target URL, in processing order, regardless of outcome.
type CrawlSummary struct {
	URL string `json:"url"`

	// Status is the HTTP status code, or 0 when no response was received.
	Status int `json:"status,omitempty"`

	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`

	// Fingerprint is an xxhash of the response body on successful fetches.
	// Identical fingerprints across targets indicate aliased paths serving
	// the same page.
	Fingerprint string `json:"fingerprint,omitempty"`
}

// Report is the complete outcome of one discovery run.
type Report struct {
	// Domain is the normalized host that was scanned.
	Domain string `json:"domain"`

	// Results are discovered and guessed addresses, ordered by confidence
	// weight descending with ties broken by address.
	Results []EmailResult `json:"results"`

	// Patterns are display-only "pattern idea" labels: the nine generic role
	// addresses plus any named-convention addresses.
	Patterns []string `json:"patterns"`

	// Crawled holds one summary per processed target, in order.
	Crawled []CrawlSummary `json:"crawled"`
}
