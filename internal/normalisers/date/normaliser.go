// Package date coerces values to ISO 8601 dates (YYYY-MM-DD).
//
// Source files use a remarkable variety of date formats; the layout list
// below mirrors the formats seen in the wild. The list is ordered and the
// first layout that parses wins, so for ambiguous strings like
// "01-02-2020" the order itself is the disambiguation policy: UK day-first
// layouts sit before the US month-first one. Do not reorder.
package date

import (
	"strings"
	"time"

	"github.com/digital-land/harmonise-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.ValueNormaliser = (*Normaliser)(nil)

// layouts in resolution order. All of these have been used in source data.
var layouts = []string{
	"2006-01-02",
	"20060102",
	"2006-01-02T15:04:05.000Z",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"2006 01 02",
	"2006.01.02",
	"2006-02-01", // year-day-month: ambiguous, resolved by position in this list
	"2006",
	"2006.0",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02-01-2006",
	"02-01-06",
	"02.01.2006",
	"02.01.06",
	"02/01/2006",
	"02/01/06",
	"02-Jan-2006",
	"02-Jan-06",
	"02 January 2006",
	"Jan 02, 2006",
	"Jan 02, 06",
	"Jan-06",
	"01/02/2006", // US month-first: ambiguous, only reached when day-first fails
}

// Normaliser handles date fields.
type Normaliser struct{}

// New creates a new date normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Datatype returns the issue label for failed coercions.
func (n *Normaliser) Datatype() string {
	return "date"
}

// Normalise trims surrounding quotes, spaces and commas, then tries each
// layout in order, rendering the first success as YYYY-MM-DD.
func (n *Normaliser) Normalise(value string) (string, bool) {
	value = strings.Trim(value, ` ",`)

	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}
