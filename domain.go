package mailscout

import (
	"net/url"
	"strings"
)

// placeholderHosts are throwaway domains that frequently show up in form
// input and scraped markup. They are never worth crawling and addresses on
// them are never worth keeping.
var placeholderHosts = map[string]bool{
	"example.com":    true,
	"email.com":      true,
	"domain.com":     true,
	"yourdomain.com": true,
	"test.com":       true,
}

// Domain is the canonical form of a user-supplied domain or URL.
type Domain struct {
	// Origin is the scheme plus host, e.g. "https://acme.com".
	// The scheme is https unless the caller explicitly supplied http.
	Origin string

	// Host is the lowercased hostname with no scheme or trailing slash.
	Host string
}

// NormalizeDomain turns free-form domain input ("acme.com", "https://acme.com/",
// " Acme.com ") into a canonical Domain.
//
// Returns EINVALID for empty or unparseable input and EBLOCKED when the host
// is a known placeholder domain.
func NormalizeDomain(raw string) (*Domain, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, Errorf(EINVALID, "domain is required")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return nil, Errorf(EINVALID, "could not parse domain %q", raw)
	}

	host := strings.ToLower(u.Hostname())
	if placeholderHosts[host] {
		return nil, Errorf(EBLOCKED, "%q is a placeholder domain, not a real organization", host)
	}

	return &Domain{
		Origin: u.Scheme + "://" + strings.ToLower(u.Host),
		Host:   host,
	}, nil
}
