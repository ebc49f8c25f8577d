package domain

// Issue records one value that could not be normalised with full
// confidence. Issues are append-only suggestions for a human to review;
// they never abort a run.
type Issue struct {
	// RowNumber is the 1-based input row the value came from. The row
	// counter is owned by the pipeline and incremented once per row,
	// however many issues that row raises.
	RowNumber int

	// Field is the column name, or "GeoX,GeoY" for the geometry pair.
	Field string

	// Datatype labels the coercion that was attempted: "integer",
	// "decimal", "date", "uri", "opendatacommunities-uri" or "OSGB".
	Datatype string

	// Value is the original raw value, before any strip patterns.
	Value string
}
