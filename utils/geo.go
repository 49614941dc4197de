package utils

import "math"

// Mean Earth radii. One haversine, parameterized by radius, so miles and
// kilometers can never drift apart.
const (
	EarthRadiusMiles = 3958.8
	EarthRadiusKm    = 6371.0

	// One degree of latitude, in miles. Used for the coarse bounding box only.
	milesPerDegreeLat = 69.0
)

// Haversine returns the great-circle distance between two points on a sphere
// of the given radius. Callers must guard against missing coordinates; there
// is no null handling here.
func Haversine(lat1, lng1, lat2, lng2, radius float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return radius * c
}

func HaversineMiles(lat1, lng1, lat2, lng2 float64) float64 {
	return Haversine(lat1, lng1, lat2, lng2, EarthRadiusMiles)
}

func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	return Haversine(lat1, lng1, lat2, lng2, EarthRadiusKm)
}

// LatitudeRange returns an over-inclusive latitude band around lat for a
// search radius in miles. It deliberately ignores longitude compression so a
// cheap range query can run before the exact distance pass without false
// negatives.
func LatitudeRange(lat, radiusMiles float64) (minLat, maxLat float64) {
	delta := radiusMiles / milesPerDegreeLat
	return lat - delta, lat + delta
}

func KmToMiles(km float64) float64 {
	return km * 0.621371
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
