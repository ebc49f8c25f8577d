package geometry

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digital-land/harmonise-cli/internal/core/domain"
)

func geoRow(x, y string) domain.Row {
	return domain.Row{domain.GeoXField: x, domain.GeoYField: y}
}

func parseCoord(t *testing.T, s string) float64 {
	t.Helper()
	f, err := strconv.ParseFloat(s, 64)
	require.NoError(t, err)
	return f
}

func TestNormaliseRow_BlankPassthrough(t *testing.T) {
	normaliser := New()

	for _, row := range []domain.Row{
		geoRow("", ""),
		geoRow("-0.12", ""),
		geoRow("", "51.5"),
	} {
		got, issue := normaliser.NormaliseRow(row.Clone())
		assert.Nil(t, issue)
		assert.Equal(t, row, got)
	}
}

func TestNormaliseRow_AlreadyWGS84(t *testing.T) {
	normaliser := New()

	got, issue := normaliser.NormaliseRow(geoRow("-0.127600", "51.504700"))
	require.Nil(t, issue)
	assert.Equal(t, "-0.1276", got[domain.GeoXField])
	assert.Equal(t, "51.5047", got[domain.GeoYField])
}

func TestNormaliseRow_SwappedWGS84(t *testing.T) {
	normaliser := New()

	got, issue := normaliser.NormaliseRow(geoRow("51.5047", "-0.1276"))
	require.Nil(t, issue)
	assert.Equal(t, "-0.1276", got[domain.GeoXField])
	assert.Equal(t, "51.5047", got[domain.GeoYField])
}

func TestNormaliseRow_OSGBReprojection(t *testing.T) {
	normaliser := New()

	// Trafalgar Square, roughly: easting 530000, northing 180000.
	got, issue := normaliser.NormaliseRow(geoRow("530000", "180000"))
	require.Nil(t, issue)

	lon := parseCoord(t, got[domain.GeoXField])
	lat := parseCoord(t, got[domain.GeoYField])
	assert.InDelta(t, -0.127, lon, 0.05)
	assert.InDelta(t, 51.505, lat, 0.05)
}

func TestNormaliseRow_SwappedOSGB(t *testing.T) {
	normaliser := New()

	got, issue := normaliser.NormaliseRow(geoRow("180000", "530000"))
	require.Nil(t, issue)

	lon := parseCoord(t, got[domain.GeoXField])
	lat := parseCoord(t, got[domain.GeoYField])
	assert.InDelta(t, -0.127, lon, 0.05)
	assert.InDelta(t, 51.505, lat, 0.05)
}

func TestNormaliseRow_UnresolvablePair(t *testing.T) {
	normaliser := New()

	got, issue := normaliser.NormaliseRow(geoRow("42", "42"))
	require.NotNil(t, issue)
	assert.Equal(t, domain.GeoPairField, issue.Field)
	assert.Equal(t, "OSGB", issue.Datatype)
	assert.Equal(t, "42,42", issue.Value)
	assert.Empty(t, got[domain.GeoXField])
	assert.Empty(t, got[domain.GeoYField])
}

func TestNormaliseRow_UnparseablePair(t *testing.T) {
	normaliser := New()

	got, issue := normaliser.NormaliseRow(geoRow("easting", "northing"))
	require.NotNil(t, issue)
	assert.Equal(t, "easting,northing", issue.Value)
	assert.Empty(t, got[domain.GeoXField])
	assert.Empty(t, got[domain.GeoYField])
}

func TestNormaliseRow_OtherFieldsUntouched(t *testing.T) {
	normaliser := New()

	row := geoRow("-0.1276", "51.5047")
	row["SiteReference"] = "BF001"

	got, issue := normaliser.NormaliseRow(row)
	require.Nil(t, issue)
	assert.Equal(t, "BF001", got["SiteReference"])
}

func TestToWGS84(t *testing.T) {
	tests := []struct {
		name     string
		easting  float64
		northing float64
		lat      float64
		lon      float64
	}{
		{
			// Ordnance Survey worked example point, near Caister-on-Sea.
			name:     "east coast",
			easting:  651409.903,
			northing: 313177.270,
			lat:      52.6580,
			lon:      1.7160,
		},
		{
			name:     "central London",
			easting:  530000,
			northing: 180000,
			lat:      51.5052,
			lon:      -0.1276,
		},
		{
			name:     "Newcastle",
			easting:  424600,
			northing: 564300,
			lat:      54.9710,
			lon:      -1.6180,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lon := ToWGS84(tt.easting, tt.northing)
			assert.InDelta(t, tt.lat, lat, 0.01)
			assert.InDelta(t, tt.lon, lon, 0.01)
			assert.True(t, withinEngland(lon, lat))
		})
	}
}
