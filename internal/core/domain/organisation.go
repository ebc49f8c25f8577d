package domain

// Organisation is one row of the organisation reference table.
type Organisation struct {
	// Organisation is the curie-style identifier, e.g.
	// "local-authority-eng:CAT".
	Organisation string

	// OpenDataCommunities is the canonical URI for the organisation.
	OpenDataCommunities string

	// StatisticalGeography is the ONS geography code, e.g. "E07000229".
	StatisticalGeography string
}

// OrganisationPatch is one row of the manually curated patch table. It maps
// a literal source value to the organisation it should resolve to,
// overriding or extending the derived mappings.
type OrganisationPatch struct {
	// Value is the literal string as it appears in source data.
	Value string

	// Organisation names the organisation the value belongs to. Blank or
	// unknown identifiers add no mapping.
	Organisation string
}
