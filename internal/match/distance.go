package match

import (
	"math"

	"github.com/godiehurtado/nearsy-app-sub000/internal/domain"
)

// Distance returns the great-circle distance between a and b in meters
// using the haversine formula. Symmetric, zero for equal points.
func Distance(a, b domain.Coordinates) float64 {
	dLat := deg2rad(b.Lat - a.Lat)
	dLng := deg2rad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(a.Lat))*math.Cos(deg2rad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
