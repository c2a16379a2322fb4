package mock

import "github.com/scoutkit/mailscout"

var _ mailscout.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of mailscout.Extractor.
type Extractor struct {
	ExtractFn func(html string, pageURL string) ([]mailscout.EmailHit, error)
}

func (e *Extractor) Extract(html string, pageURL string) ([]mailscout.EmailHit, error) {
	return e.ExtractFn(html, pageURL)
}
