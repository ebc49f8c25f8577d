// Package normalisers selects and applies the per-field normalisers.
//
// The registry resolves each schema field to its normaliser once, at build
// time, so per-row dispatch is a map lookup rather than re-interpreting the
// schema's type strings. Individual coercers live in the subpackages.
package normalisers

import (
	"strings"

	"github.com/digital-land/harmonise-cli/internal/core/domain"
	"github.com/digital-land/harmonise-cli/internal/core/ports/driven"
	"github.com/digital-land/harmonise-cli/internal/normalisers/date"
	"github.com/digital-land/harmonise-cli/internal/normalisers/decimal"
	"github.com/digital-land/harmonise-cli/internal/normalisers/integer"
	"github.com/digital-land/harmonise-cli/internal/normalisers/organisation"
	"github.com/digital-land/harmonise-cli/internal/normalisers/uri"
)

// nullSentinels are raw values meaning "no data". They normalise to ""
// immediately, with no issue logged. Compared trimmed and lower-cased.
var nullSentinels = map[string]struct{}{
	"":       {},
	"-":      {},
	"n/a":    {},
	"#n/a":   {},
	"???":    {},
	"<null>": {},
}

// Registry holds one resolved normaliser per schema field.
type Registry struct {
	byField map[string]driven.ValueNormaliser
}

// NewRegistry resolves a normaliser for every field in the schema. Fields
// of kind string get none and pass through. The organisation index must be
// fully built before the registry is used; it is read-only afterwards.
func NewRegistry(schema *domain.Schema, index *organisation.Index) *Registry {
	r := &Registry{byField: make(map[string]driven.ValueNormaliser, len(schema.Fields))}

	for i := range schema.Fields {
		f := &schema.Fields[i]
		switch f.Kind {
		case domain.KindOrganisationURI:
			r.byField[f.Name] = organisation.NewResolver(index)
		case domain.KindInteger:
			r.byField[f.Name] = integer.New()
		case domain.KindDecimal:
			r.byField[f.Name] = decimal.New(f.Precision)
		case domain.KindURI:
			r.byField[f.Name] = uri.New()
		case domain.KindDate:
			r.byField[f.Name] = date.New()
		}
	}
	return r
}

// Normalise coerces one raw value for the given field.
//
// Null sentinels yield "" with no issue. Otherwise the field's strip
// patterns are applied in declared order, then the resolved normaliser. On
// coercion failure the returned issue carries the field name, the
// attempted datatype and the original pre-strip value; its row number is
// stamped by the pipeline.
func (r *Registry) Normalise(field *domain.Field, raw string) (string, *domain.Issue) {
	if _, null := nullSentinels[strings.ToLower(strings.TrimSpace(raw))]; null {
		return "", nil
	}

	value := raw
	for _, re := range field.Strip {
		value = re.ReplaceAllString(value, "")
	}

	normaliser, ok := r.byField[field.Name]
	if !ok {
		// Free text passes through stripped but otherwise verbatim.
		return value, nil
	}

	canonical, ok := normaliser.Normalise(value)
	if !ok {
		return "", &domain.Issue{
			Field:    field.Name,
			Datatype: normaliser.Datatype(),
			Value:    raw,
		}
	}
	return canonical, nil
}
