package mailscout

import "strings"

// Request describes one email discovery run. It is owned by the caller and
// treated as immutable by the engine. Shape and type validation is the
// transport layer's job; Validate only enforces domain-level constraints.
type Request struct {
	// Domain is the organization's domain or URL. Required.
	Domain string `json:"domain"`

	// FirstName and LastName, when both are present, enable naming-convention
	// guesses (jane.doe@, jdoe@, ...).
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`

	// Keywords are free-text department or team hints ("engineering",
	// "customer success") expanded into extra candidate paths.
	Keywords []string `json:"keywords,omitempty"`
}

// Validate returns an error if the request cannot be processed.
func (r *Request) Validate() error {
	if len(strings.TrimSpace(r.Domain)) < 3 {
		return Errorf(EINVALID, "domain must be at least 3 characters")
	}
	return nil
}
