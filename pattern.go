package mailscout

import "strings"

// GenericPrefixes are the role mailboxes suggested for every organization.
// They double as the relevance filter's allowlist for addresses hosted on
// third-party domains.
var GenericPrefixes = []string{
	"hello",
	"hi",
	"info",
	"contact",
	"support",
	"press",
	"partnerships",
	"careers",
	"sales",
}

// PatternCandidate is a naming-convention guess for a specific person.
type PatternCandidate struct {
	// Email is the full guessed address, e.g. "jane.doe@acme.com".
	Email string

	// Label names the convention, e.g. "first.last".
	Label string

	// Description explains the convention in plain language. It becomes the
	// source context when the guess is registered as a low-confidence result.
	Description string
}

// NamedPatterns returns the seven name-based candidate addresses for host.
// It returns nil unless both names are non-empty after stripping non-letter
// characters, so a lone first or last name never produces guesses.
func NamedPatterns(firstName, lastName, host string) []PatternCandidate {
	first := sanitizeName(firstName)
	last := sanitizeName(lastName)
	if first == "" || last == "" {
		return nil
	}

	fi := first[:1]
	li := last[:1]

	return []PatternCandidate{
		{first + "." + last + "@" + host, "first.last", "First name and last name separated by a dot."},
		{first + last + "@" + host, "firstlast", "First name followed by last name."},
		{fi + "." + last + "@" + host, "f.last", "First initial, a dot, then last name."},
		{first + "@" + host, "first", "First name only."},
		{last + "@" + host, "last", "Last name only."},
		{first + li + "@" + host, "firstl", "First name followed by last initial."},
		{fi + last + "@" + host, "flast", "First initial followed by last name."},
	}
}

// PatternLabels returns the display-only "pattern idea" list: the nine
// generic role addresses for host plus the named candidate addresses, in
// that order, deduplicated.
func PatternLabels(host string, named []PatternCandidate) []string {
	seen := make(map[string]bool, len(GenericPrefixes)+len(named))
	labels := make([]string, 0, len(GenericPrefixes)+len(named))

	add := func(addr string) {
		if addr == "" || seen[addr] {
			return
		}
		seen[addr] = true
		labels = append(labels, addr)
	}

	for _, prefix := range GenericPrefixes {
		add(prefix + "@" + host)
	}
	for _, cand := range named {
		add(cand.Email)
	}

	return labels
}

// sanitizeName strips everything but letters and lowercases the rest, so
// "O'Brien" becomes "obrien" and " Jane " becomes "jane".
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
