// Package geo provides great-circle containment checks for operating areas.
package geo

import (
	"math"

	"beacon/internal/domain/entity"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// Distance returns the great-circle distance between two points in
// kilometers, computed with the haversine formula.
func Distance(a, b entity.Location) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	deltaLat := toRadians(b.Latitude - a.Latitude)
	deltaLng := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// WithinRadius reports whether point lies inside the operating area's
// circle. Coordinates are not validated here: NaN or out-of-range input
// makes the distance NaN, and the comparison then yields false, so bad
// input never matches.
func WithinRadius(area entity.OperatingArea, point entity.Location) bool {
	return Distance(area.Center, point) <= area.RadiusKm
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
