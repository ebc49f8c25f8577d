package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindFor(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		fieldType string
		format    string
		expected  FieldKind
	}{
		{
			name:      "OrganisationURI wins over declared type",
			fieldName: "OrganisationURI",
			fieldType: "string",
			format:    "uri",
			expected:  KindOrganisationURI,
		},
		{
			name:      "integer type",
			fieldName: "Hectares",
			fieldType: "integer",
			expected:  KindInteger,
		},
		{
			name:      "number type",
			fieldName: "GeoX",
			fieldType: "number",
			expected:  KindDecimal,
		},
		{
			name:      "uri format wins over date type",
			fieldName: "SiteplanURL",
			fieldType: "date",
			format:    "uri",
			expected:  KindURI,
		},
		{
			name:      "date type",
			fieldName: "FirstAddedDate",
			fieldType: "date",
			expected:  KindDate,
		},
		{
			name:      "anything else is free text",
			fieldName: "Notes",
			fieldType: "string",
			expected:  KindString,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindFor(tt.fieldName, tt.fieldType, tt.format))
		})
	}
}

func TestNewField(t *testing.T) {
	t.Run("defaults precision", func(t *testing.T) {
		f, err := NewField("GeoX", "number", "", 0, nil)
		require.NoError(t, err)
		assert.Equal(t, int32(DefaultPrecision), f.Precision)
		assert.Equal(t, KindDecimal, f.Kind)
	})

	t.Run("compiles strip patterns in order", func(t *testing.T) {
		f, err := NewField("SiteReference", "string", "", 0, []string{`^\s+`, `\s+$`})
		require.NoError(t, err)
		require.Len(t, f.Strip, 2)
		assert.Equal(t, `^\s+`, f.Strip[0].String())
	})

	t.Run("rejects bad strip pattern", func(t *testing.T) {
		_, err := NewField("SiteReference", "string", "", 0, []string{`([`})
		assert.ErrorIs(t, err, ErrInvalidSchema)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewField("", "string", "", 0, nil)
		assert.ErrorIs(t, err, ErrInvalidSchema)
	})
}

func TestNewSchema(t *testing.T) {
	field := func(name string) Field {
		f, err := NewField(name, "string", "", 0, nil)
		require.NoError(t, err)
		return f
	}

	t.Run("preserves declared order", func(t *testing.T) {
		s, err := NewSchema([]Field{field("B"), field("A"), field("C")})
		require.NoError(t, err)
		assert.Equal(t, []string{"B", "A", "C"}, s.FieldNames())
	})

	t.Run("lookup by name", func(t *testing.T) {
		s, err := NewSchema([]Field{field("A"), field("B")})
		require.NoError(t, err)

		f, err := s.Field("B")
		require.NoError(t, err)
		assert.Equal(t, "B", f.Name)

		_, err = s.Field("missing")
		assert.ErrorIs(t, err, ErrUnknownField)
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		_, err := NewSchema([]Field{field("A"), field("A")})
		assert.ErrorIs(t, err, ErrInvalidSchema)
	})

	t.Run("rejects empty schema", func(t *testing.T) {
		_, err := NewSchema(nil)
		assert.ErrorIs(t, err, ErrInvalidSchema)
	})
}
