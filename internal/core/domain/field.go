package domain

import (
	"fmt"
	"regexp"
)

// DefaultPrecision is the number of fractional digits kept by the decimal
// normaliser when a field does not declare its own precision.
const DefaultPrecision = 6

// FieldKind is the closed set of normalisation strategies. It is resolved
// from a field's declared type/format once, at schema build time.
type FieldKind int

const (
	// KindString passes values through unchanged after strip patterns.
	KindString FieldKind = iota

	// KindInteger coerces to a canonical base-10 integer.
	KindInteger

	// KindDecimal coerces to an exact decimal rounded to the field precision.
	KindDecimal

	// KindDate coerces to an ISO 8601 date (YYYY-MM-DD).
	KindDate

	// KindURI validates an absolute URL after collapsing whitespace.
	KindURI

	// KindOrganisationURI resolves an organisation identifier variant to
	// its canonical opendatacommunities URI.
	KindOrganisationURI
)

// String returns the kind's name, matching the datatype labels used in
// issue records where one exists.
func (k FieldKind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindDate:
		return "date"
	case KindURI:
		return "uri"
	case KindOrganisationURI:
		return "opendatacommunities-uri"
	default:
		return "string"
	}
}

// organisationURIField is the one field name dispatched to the organisation
// resolver regardless of its declared type.
const organisationURIField = "OrganisationURI"

// KindFor resolves a field's kind from its name and declared type/format.
// Precedence: the OrganisationURI field, then type integer, type number,
// format uri, type date; anything else is free text.
func KindFor(name, fieldType, format string) FieldKind {
	switch {
	case name == organisationURIField:
		return KindOrganisationURI
	case fieldType == "integer":
		return KindInteger
	case fieldType == "number":
		return KindDecimal
	case format == "uri":
		return KindURI
	case fieldType == "date":
		return KindDate
	default:
		return KindString
	}
}

// Field is one column of a schema, with its normalisation strategy and any
// pre-processing resolved up front.
type Field struct {
	// Name is the column name, unique within a schema.
	Name string

	// Type is the declared datatype ("integer", "number", "date", ...).
	Type string

	// Format is the declared format, if any (e.g. "uri").
	Format string

	// Kind is the normalisation strategy resolved from Name/Type/Format.
	Kind FieldKind

	// Precision is the number of fractional digits for decimal fields.
	Precision int32

	// Strip holds compiled patterns removed from the raw value, in declared
	// order, before type coercion.
	Strip []*regexp.Regexp
}

// NewField builds a Field, resolving its kind and compiling strip patterns.
// A strip pattern that does not compile makes the whole schema invalid.
func NewField(name, fieldType, format string, precision int32, strip []string) (Field, error) {
	if name == "" {
		return Field{}, fmt.Errorf("%w: field with empty name", ErrInvalidSchema)
	}
	if precision <= 0 {
		precision = DefaultPrecision
	}

	f := Field{
		Name:      name,
		Type:      fieldType,
		Format:    format,
		Kind:      KindFor(name, fieldType, format),
		Precision: precision,
	}

	for _, pattern := range strip {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return Field{}, fmt.Errorf("%w: field %q strip pattern %q: %v",
				ErrInvalidSchema, name, pattern, err)
		}
		f.Strip = append(f.Strip, re)
	}

	return f, nil
}

// Schema is an ordered sequence of fields. Field order defines output
// column order; lookup by name is O(1).
type Schema struct {
	// Fields in declared order.
	Fields []Field

	byName map[string]*Field
}

// NewSchema builds a schema from fields in declared order. Field names must
// be unique.
func NewSchema(fields []Field) (*Schema, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields", ErrInvalidSchema)
	}

	s := &Schema{
		Fields: fields,
		byName: make(map[string]*Field, len(fields)),
	}
	for i := range s.Fields {
		f := &s.Fields[i]
		if _, dup := s.byName[f.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrInvalidSchema, f.Name)
		}
		s.byName[f.Name] = f
	}
	return s, nil
}

// Field returns the named field, or ErrUnknownField.
func (s *Schema) Field(name string) (*Field, error) {
	f, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return f, nil
}

// FieldNames returns the column names in schema order.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}
