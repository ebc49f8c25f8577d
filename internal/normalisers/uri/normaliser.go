// Package uri validates values as absolute URLs.
package uri

import (
	"net/url"
	"strings"

	"github.com/digital-land/harmonise-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.ValueNormaliser = (*Normaliser)(nil)

// Normaliser handles uri-format fields.
type Normaliser struct{}

// New creates a new URI normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Datatype returns the issue label for failed coercions.
func (n *Normaliser) Datatype() string {
	return "uri"
}

// Normalise collapses all whitespace out of the value, then requires a
// well-formed absolute URL. Some source URIs arrive with embedded line
// breaks and spaces, hence the collapse.
func (n *Normaliser) Normalise(value string) (string, bool) {
	collapsed := Collapse(value)

	u, err := url.Parse(collapsed)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return "", false
	}
	return collapsed, true
}

// Collapse removes every run of whitespace, including line breaks, from s.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), "")
}
