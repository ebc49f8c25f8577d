package driven

import "github.com/digital-land/harmonise-cli/internal/core/domain"

// ValueNormaliser coerces a single raw field value to canonical form.
// Each implementation handles one field kind (integer, decimal, date, ...).
type ValueNormaliser interface {
	// Datatype returns the label recorded in issues when coercion fails.
	Datatype() string

	// Normalise returns the canonical rendering of value and whether
	// coercion succeeded. On failure the canonical string is "".
	Normalise(value string) (string, bool)
}

// RowNormaliser is a post-pass over an assembled output row, for
// constraints that span fields (the GeoX/GeoY pair). It returns the
// adjusted row and an issue if the joint constraint failed; the issue's
// row number is stamped by the pipeline.
type RowNormaliser interface {
	// NormaliseRow adjusts the row in place and returns it.
	NormaliseRow(row domain.Row) (domain.Row, *domain.Issue)
}
