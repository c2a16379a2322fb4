package crawl

import (
	"fmt"
	"sort"

	"github.com/scoutkit/mailscout"
)

// Aggregate merges extraction hits across pages into one entry per unique
// address. It is scoped to a single run, populated incrementally as each
// page is processed, and never removes entries.
type Aggregate struct {
	entries map[string]*entry
	order   []string
}

// entry tallies the evidence collected for one address.
type entry struct {
	email   string
	sources []mailscout.EmailSource
	mailto  int
	text    int
	pattern int
}

// NewAggregate creates an empty Aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{entries: make(map[string]*entry)}
}

// Add records one discovery event. The entry for the address is created on
// first sight; subsequent events append to its evidence in discovery order.
func (a *Aggregate) Add(hit mailscout.EmailHit) {
	e, ok := a.entries[hit.Email]
	if !ok {
		e = &entry{email: hit.Email}
		a.entries[hit.Email] = e
		a.order = append(a.order, hit.Email)
	}

	e.sources = append(e.sources, mailscout.EmailSource{
		URL:     hit.URL,
		Context: hit.Context,
		Via:     hit.Via,
	})

	switch hit.Via {
	case mailscout.ViaMailto:
		e.mailto++
	case mailscout.ViaText:
		e.text++
	case mailscout.ViaPattern:
		e.pattern++
	}
}

// Has reports whether the address already has an entry.
func (a *Aggregate) Has(email string) bool {
	_, ok := a.entries[email]
	return ok
}

// Len returns the number of unique addresses collected.
func (a *Aggregate) Len() int {
	return len(a.entries)
}

// Results derives the externally visible result list: one EmailResult per
// entry with its confidence tier and justification, ordered by confidence
// weight descending with ties broken by address.
func (a *Aggregate) Results() []mailscout.EmailResult {
	results := make([]mailscout.EmailResult, 0, len(a.order))
	for _, email := range a.order {
		e := a.entries[email]
		results = append(results, mailscout.EmailResult{
			Email:      e.email,
			Confidence: e.confidence(),
			Reason:     e.reason(),
			Sources:    e.sources,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		wi, wj := results[i].Confidence.Weight(), results[j].Confidence.Weight()
		if wi != wj {
			return wi > wj
		}
		return results[i].Email < results[j].Email
	})

	return results
}

// confidence derives the tier from the evidence tally: any mailto evidence
// is high, text-only is medium, pattern-only is low.
func (e *entry) confidence() mailscout.Confidence {
	switch {
	case e.mailto > 0:
		return mailscout.ConfidenceHigh
	case e.text > 0:
		return mailscout.ConfidenceMedium
	default:
		return mailscout.ConfidenceLow
	}
}

// reason builds the human-readable justification from the tally.
func (e *entry) reason() string {
	switch {
	case e.mailto > 0 && e.text > 0:
		return fmt.Sprintf("Based on %d mailto link(s) and page text extraction.", e.mailto)
	case e.mailto > 0:
		return fmt.Sprintf("Based on %d mailto link(s).", e.mailto)
	case e.text > 0:
		return fmt.Sprintf("Found %d time(s) in page text.", e.text)
	default:
		return "Pattern generated from company naming conventions."
	}
}
