package mailscout

import (
	"slices"
	"strings"
)

// Relevant reports whether an extracted address is plausibly connected to the
// target host. Placeholder domains are always rejected. Addresses whose
// domain part contains the target host are kept; anything else is kept only
// when its local part is one of the generic role prefixes, which preserves
// catch-all mailboxes hosted on third-party support platforms.
//
// The containment check is deliberately a substring match, so subdomains
// (mail.acme.com for acme.com) pass, but so would notacme.com. See DESIGN.md.
func Relevant(email, host string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	local, domain := email[:at], email[at+1:]
	if placeholderHosts[domain] {
		return false
	}
	if strings.Contains(domain, host) {
		return true
	}
	return slices.Contains(GenericPrefixes, local)
}
