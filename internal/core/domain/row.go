package domain

// Row maps field names to values. On input the values are raw strings from
// the source file; on output every schema field is present and holds either
// a canonical string or "" ("" denotes uncoercible or absent, never omitted).
type Row map[string]string

// Clone returns a copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Geometry field names, processed together as a post-pass after all scalar
// normalisation.
const (
	GeoXField = "GeoX"
	GeoYField = "GeoY"

	// GeoPairField labels issues raised against the pair as a whole.
	GeoPairField = "GeoX,GeoY"
)
