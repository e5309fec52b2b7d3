package geo

import (
	"math"

	"mmg/model"
)

// earthRadius is the WGS84-approximate mean Earth radius in meters.
const earthRadius = 6371000

// Distance returns the great-circle distance between two points in meters,
// using the haversine formula. Elevation is ignored.
func Distance(a, b model.Point) float64 {
	φ1 := a.Lat * math.Pi / 180
	φ2 := b.Lat * math.Pi / 180
	Δφ := (b.Lat - a.Lat) * math.Pi / 180
	Δλ := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(Δφ/2)*math.Sin(Δφ/2) +
		math.Cos(φ1)*math.Cos(φ2)*
			math.Sin(Δλ/2)*math.Sin(Δλ/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadius * c
}

// ElevationDelta returns the positive and negative elevation change going
// from a to b. If either point lacks an elevation, both values are 0; missing
// elevation is simply excluded from totals, never an error.
func ElevationDelta(a, b model.Point) (gain, loss float64) {
	if a.Elevation == nil || b.Elevation == nil {
		return 0, 0
	}
	d := *b.Elevation - *a.Elevation
	if d > 0 {
		return d, 0
	}
	return 0, -d
}
