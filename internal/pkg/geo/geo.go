package geo

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/antarid/antar/internal/pkg/models"
)

// EarthRadiusKm is the mean radius of the Earth in kilometers.
const EarthRadiusKm = 6371.0

// BeaconPrecision is the geohash precision used for driver availability
// cells (~4.9km x 4.9km at precision 5).
const BeaconPrecision uint = 5

// Distance calculates the great-circle distance between two coordinates in
// kilometers using the Haversine formula.
func Distance(a, b models.Coordinate) float64 {
	lat1 := toRadians(a.Latitude)
	lon1 := toRadians(a.Longitude)
	lat2 := toRadians(b.Latitude)
	lon2 := toRadians(b.Longitude)

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// Encode converts a coordinate to a geohash cell at the given precision.
func Encode(c models.Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, precision)
}

// Decode converts a geohash cell back to the coordinate at its center.
func Decode(hash string) models.Coordinate {
	lat, lng := geohash.Decode(hash)
	return models.Coordinate{Latitude: lat, Longitude: lng}
}
