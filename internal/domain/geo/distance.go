// Package geo holds the spherical geometry used for safe zone membership.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusM is the mean Earth radius used by every calculation in this package.
const EarthRadiusM = 6371000.0

// Distance returns the great-circle distance in meters between two points using the
// Haversine formula. Points are orb points, longitude first. NaN input yields NaN.
func Distance(p1, p2 orb.Point) float64 {
	lat1Rad := p1[1] * math.Pi / 180
	lng1Rad := p1[0] * math.Pi / 180
	lat2Rad := p2[1] * math.Pi / 180
	lng2Rad := p2[0] * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusM * c
}

// Contains reports whether p lies within radius meters of center. The boundary is inside.
func Contains(center orb.Point, radius float64, p orb.Point) bool {
	return Distance(center, p) <= radius
}

// Destination returns the point reached by travelling distance meters from origin
// along the initial bearing, in degrees clockwise from north.
func Destination(origin orb.Point, bearing, distance float64) orb.Point {
	lat1 := origin[1] * math.Pi / 180
	lng1 := origin[0] * math.Pi / 180
	theta := bearing * math.Pi / 180
	delta := distance / EarthRadiusM

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(delta) +
		math.Cos(lat1)*math.Sin(delta)*math.Cos(theta))
	lng2 := lng1 + math.Atan2(
		math.Sin(theta)*math.Sin(delta)*math.Cos(lat1),
		math.Cos(delta)-math.Sin(lat1)*math.Sin(lat2),
	)

	return orb.Point{lng2 * 180 / math.Pi, lat2 * 180 / math.Pi}
}
