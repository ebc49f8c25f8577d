// Package geometry normalises the GeoX/GeoY coordinate pair to canonical
// WGS84 longitude/latitude, once per row, after all scalar normalisation.
package geometry

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/digital-land/harmonise-cli/internal/core/domain"
	"github.com/digital-land/harmonise-cli/internal/core/ports/driven"
	decnorm "github.com/digital-land/harmonise-cli/internal/normalisers/decimal"
)

// Ensure Normaliser implements the interface.
var _ driven.RowNormaliser = (*Normaliser)(nil)

// Normaliser handles the GeoX/GeoY pair.
type Normaliser struct {
	precision int32
}

// New creates a new geometry normaliser.
func New() *Normaliser {
	return &Normaliser{precision: domain.DefaultPrecision}
}

// withinEngland is a generous England/Wales bounding box in WGS84 degrees.
func withinEngland(x, y float64) bool {
	return y > 49.5 && y < 56.0 && x > -7.0 && x < 2.0
}

// NormaliseRow coerces the row's GeoX/GeoY pair to longitude/latitude.
//
// Resolution order: the pair already looks like WGS84 (lon, lat); the
// swapped pair does; the pair reprojects from OSGB eastings/northings into
// the expected region; the swapped pair reprojects. Anything else raises an
// "OSGB" issue and both fields stay blank — no stale or half-normalised
// coordinate ever reaches the output.
func (n *Normaliser) NormaliseRow(row domain.Row) (domain.Row, *domain.Issue) {
	rawX, rawY := row[domain.GeoXField], row[domain.GeoYField]
	if rawX == "" || rawY == "" {
		return row, nil
	}

	// Blank both up front; only a successful branch restores them.
	row[domain.GeoXField] = ""
	row[domain.GeoYField] = ""

	issue := &domain.Issue{
		Field:    domain.GeoPairField,
		Datatype: "OSGB",
		Value:    strings.Join([]string{rawX, rawY}, ","),
	}

	dx, errX := decimal.NewFromString(rawX)
	dy, errY := decimal.NewFromString(rawY)
	if errX != nil || errY != nil {
		return row, issue
	}

	fx, _ := dx.Float64()
	fy, _ := dy.Float64()

	var lon, lat decimal.Decimal
	switch {
	case withinEngland(fx, fy):
		lon, lat = dx, dy
	case withinEngland(fy, fx):
		// Source columns were swapped.
		lon, lat = dy, dx
	default:
		wlat, wlon := ToWGS84(fx, fy)
		if !withinEngland(wlon, wlat) {
			wlat, wlon = ToWGS84(fy, fx)
			if !withinEngland(wlon, wlat) {
				return row, issue
			}
		}
		lon = decimal.NewFromFloat(wlon)
		lat = decimal.NewFromFloat(wlat)
	}

	row[domain.GeoXField] = decnorm.Format(lon, n.precision)
	row[domain.GeoYField] = decnorm.Format(lat, n.precision)
	return row, nil
}
