package geometry

import "math"

// OSGB36 / British National Grid (EPSG:27700) to WGS84 (EPSG:4326),
// following the Ordnance Survey published method: inverse transverse
// Mercator on the Airy 1830 ellipsoid, then a Helmert datum shift. Accurate
// to a few metres, which is good enough to decide whether a point lands in
// the expected region; this is not a survey-grade transform.

// Airy 1830 ellipsoid and National Grid projection constants.
const (
	airyA = 6377563.396
	airyB = 6356256.909

	gridScale   = 0.9996012717 // scale factor on the central meridian
	gridLat0    = 49.0 * math.Pi / 180
	gridLon0    = -2.0 * math.Pi / 180
	gridEast0   = 400000.0
	gridNorth0  = -100000.0
)

// WGS84 ellipsoid.
const (
	wgsA = 6378137.0
	wgsB = 6356752.3141
)

// Helmert parameters for OSGB36 -> WGS84 (inverse of the published
// WGS84 -> OSGB36 set). Translations in metres, rotations in arc-seconds,
// scale in ppm.
const (
	helmertTX = 446.448
	helmertTY = -125.157
	helmertTZ = 542.060
	helmertRX = 0.1502
	helmertRY = 0.2470
	helmertRZ = 0.8421
	helmertS  = -20.4894
)

const arcSecToRad = math.Pi / (180 * 3600)

// ToWGS84 converts an easting/northing pair in metres to WGS84 latitude
// and longitude in degrees.
func ToWGS84(easting, northing float64) (lat, lon float64) {
	phi, lambda := gridToOSGB36(easting, northing)
	return osgb36ToWGS84(phi, lambda)
}

// gridToOSGB36 runs the inverse transverse Mercator projection, returning
// latitude/longitude in radians on the OSGB36 datum.
func gridToOSGB36(easting, northing float64) (phi, lambda float64) {
	a, b := airyA, airyB
	e2 := (a*a - b*b) / (a * a)
	n := (a - b) / (a + b)

	// Iterate the meridional arc until the northing residual is negligible.
	phi = gridLat0
	m := 0.0
	for {
		phi = (northing-gridNorth0-m)/(a*gridScale) + phi

		dPhi := phi - gridLat0
		sPhi := phi + gridLat0
		m = b * gridScale * ((1+n+1.25*n*n+1.25*n*n*n)*dPhi -
			(3*n+3*n*n+(21.0/8.0)*n*n*n)*math.Sin(dPhi)*math.Cos(sPhi) +
			((15.0/8.0)*n*n+(15.0/8.0)*n*n*n)*math.Sin(2*dPhi)*math.Cos(2*sPhi) -
			(35.0/24.0)*n*n*n*math.Sin(3*dPhi)*math.Cos(3*sPhi))

		if math.Abs(northing-gridNorth0-m) < 1e-5 {
			break
		}
	}

	sinPhi := math.Sin(phi)
	nu := a * gridScale / math.Sqrt(1-e2*sinPhi*sinPhi)
	rho := a * gridScale * (1 - e2) / math.Pow(1-e2*sinPhi*sinPhi, 1.5)
	eta2 := nu/rho - 1

	tanPhi := math.Tan(phi)
	tan2 := tanPhi * tanPhi
	secPhi := 1 / math.Cos(phi)

	vii := tanPhi / (2 * rho * nu)
	viii := tanPhi / (24 * rho * nu * nu * nu) * (5 + 3*tan2 + eta2 - 9*tan2*eta2)
	ix := tanPhi / (720 * rho * math.Pow(nu, 5)) * (61 + 90*tan2 + 45*tan2*tan2)
	x := secPhi / nu
	xi := secPhi / (6 * nu * nu * nu) * (nu/rho + 2*tan2)
	xii := secPhi / (120 * math.Pow(nu, 5)) * (5 + 28*tan2 + 24*tan2*tan2)
	xiia := secPhi / (5040 * math.Pow(nu, 7)) * (61 + 662*tan2 + 1320*tan2*tan2 + 720*tan2*tan2*tan2)

	de := easting - gridEast0
	phi = phi - vii*de*de + viii*math.Pow(de, 4) - ix*math.Pow(de, 6)
	lambda = gridLon0 + x*de - xi*de*de*de + xii*math.Pow(de, 5) - xiia*math.Pow(de, 7)
	return phi, lambda
}

// osgb36ToWGS84 applies the Helmert datum shift, returning degrees.
func osgb36ToWGS84(phi, lambda float64) (lat, lon float64) {
	// OSGB36 geodetic to cartesian on Airy 1830.
	a, b := airyA, airyB
	e2 := (a*a - b*b) / (a * a)
	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)
	nu := a / math.Sqrt(1-e2*sinPhi*sinPhi)

	x1 := nu * cosPhi * math.Cos(lambda)
	y1 := nu * cosPhi * math.Sin(lambda)
	z1 := (1 - e2) * nu * sinPhi

	// Helmert transform.
	s := 1 + helmertS*1e-6
	rx := helmertRX * arcSecToRad
	ry := helmertRY * arcSecToRad
	rz := helmertRZ * arcSecToRad

	x2 := helmertTX + s*x1 - rz*y1 + ry*z1
	y2 := helmertTY + rz*x1 + s*y1 - rx*z1
	z2 := helmertTZ - ry*x1 + rx*y1 + s*z1

	// Cartesian back to geodetic on WGS84.
	a, b = wgsA, wgsB
	e2 = (a*a - b*b) / (a * a)
	p := math.Sqrt(x2*x2 + y2*y2)

	phi = math.Atan2(z2, p*(1-e2))
	for i := 0; i < 10; i++ {
		sinPhi = math.Sin(phi)
		nu = a / math.Sqrt(1-e2*sinPhi*sinPhi)
		next := math.Atan2(z2+e2*nu*sinPhi, p)
		if math.Abs(next-phi) < 1e-12 {
			phi = next
			break
		}
		phi = next
	}

	return phi * 180 / math.Pi, math.Atan2(y2, x2) * 180 / math.Pi
}
