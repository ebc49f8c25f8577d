// Package decimal coerces values to exact decimal numbers, avoiding the
// binary rounding artifacts a float64 round-trip would introduce.
package decimal

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/digital-land/harmonise-cli/internal/core/domain"
	"github.com/digital-land/harmonise-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.ValueNormaliser = (*Normaliser)(nil)

// Normaliser handles number fields at a fixed precision.
type Normaliser struct {
	precision int32
}

// New creates a decimal normaliser rounding to the given number of
// fractional digits. Zero or negative falls back to the default precision.
func New(precision int32) *Normaliser {
	if precision <= 0 {
		precision = domain.DefaultPrecision
	}
	return &Normaliser{precision: precision}
}

// Datatype returns the issue label for failed coercions.
func (n *Normaliser) Datatype() string {
	return "decimal"
}

// Normalise parses the value as an exact decimal, rounds it to the
// normaliser's precision and renders it canonically.
func (n *Normaliser) Normalise(value string) (string, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return "", false
	}
	return Format(d, n.precision), true
}

// Format rounds d to precision fractional digits (half away from zero) and
// renders it with trailing insignificant zeros trimmed: "1.500000" becomes
// "1.5" and "2" stays "2", never "2.0".
func Format(d decimal.Decimal, precision int32) string {
	s := d.Round(precision).String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
