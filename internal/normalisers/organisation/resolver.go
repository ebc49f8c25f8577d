package organisation

import (
	"strings"

	"github.com/digital-land/harmonise-cli/internal/core/ports/driven"
)

// Ensure Resolver implements the interface.
var _ driven.ValueNormaliser = (*Resolver)(nil)

// Resolver normalises the OrganisationURI field against a variant index.
type Resolver struct {
	index *Index
}

// NewResolver creates a resolver over a built index.
func NewResolver(index *Index) *Resolver {
	return &Resolver{index: index}
}

// Datatype returns the issue label for failed resolutions.
func (r *Resolver) Datatype() string {
	return "opendatacommunities-uri"
}

// Normalise lower-cases and whitespace-collapses the value and looks it up
// in the index (directly, then by end segment). Misses fail; there is no
// partial matching.
func (r *Resolver) Normalise(value string) (string, bool) {
	return r.index.Lookup(strings.ToLower(collapse(value)))
}
