// Package integer coerces values to canonical base-10 integers.
package integer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/digital-land/harmonise-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.ValueNormaliser = (*Normaliser)(nil)

// trailingZeros matches the ".0", ".00", ... suffix spreadsheets append
// when exporting integer columns as floats.
var trailingZeros = regexp.MustCompile(`\.0+$`)

// Normaliser handles integer fields.
type Normaliser struct{}

// New creates a new integer normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Datatype returns the issue label for failed coercions.
func (n *Normaliser) Datatype() string {
	return "integer"
}

// Normalise strips a trailing ".0+" suffix, parses the value as a base-10
// integer and re-renders it canonically: no leading zeros, no separators.
func (n *Normaliser) Normalise(value string) (string, bool) {
	value = trailingZeros.ReplaceAllString(strings.TrimSpace(value), "")

	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return "", false
	}
	return strconv.FormatInt(i, 10), true
}
