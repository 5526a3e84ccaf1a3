package engine

import "math"

const (
	// EarthRadiusKm is the mean Earth radius used by the haversine formula.
	EarthRadiusKm = 6371.0

	// DefaultTravelSpeedKmH is the assumed pace between POIs (walking).
	DefaultTravelSpeedKmH = 5.0
)

// Haversine returns the great-circle distance in kilometers between two
// latitude/longitude points given in degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// TravelTime converts a distance to hours at the given speed.
// Returns 0 for non-positive speeds.
func TravelTime(distanceKm, speedKmH float64) float64 {
	if speedKmH <= 0 {
		return 0
	}
	return distanceKm / speedKmH
}

// BuildTravelTimeMatrix computes the symmetric pairwise travel-time matrix
// in hours over the candidate set. The diagonal is zero.
func BuildTravelTimeMatrix(candidates []Candidate, speedKmH float64) [][]float64 {
	n := len(candidates)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			km := Haversine(
				candidates[i].Latitude, candidates[i].Longitude,
				candidates[j].Latitude, candidates[j].Longitude,
			)
			hours := TravelTime(km, speedKmH)
			matrix[i][j] = hours
			matrix[j][i] = hours
		}
	}

	return matrix
}
