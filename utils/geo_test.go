package utils

import (
	"math"
	"testing"
)

const (
	nycLat = 40.7128
	nycLng = -74.0060
	laLat  = 34.0522
	laLng  = -118.2437
)

func TestHaversineZeroDistance(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{nycLat, nycLng},
		{-33.8688, 151.2093},
		{89.9, 179.9},
	}
	for _, p := range points {
		if d := HaversineMiles(p[0], p[1], p[0], p[1]); math.Abs(d) > 1e-9 {
			t.Errorf("HaversineMiles(%v, %v, same) = %v, want 0", p[0], p[1], d)
		}
	}
}

func TestHaversineSymmetric(t *testing.T) {
	ab := HaversineMiles(nycLat, nycLng, laLat, laLng)
	ba := HaversineMiles(laLat, laLng, nycLat, nycLng)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("haversine not symmetric: %v vs %v", ab, ba)
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	miles := HaversineMiles(nycLat, nycLng, laLat, laLng)
	if math.Abs(miles-2451) > 5 {
		t.Errorf("NYC-LA distance = %v miles, want 2451 +/- 5", miles)
	}

	km := HaversineKm(nycLat, nycLng, laLat, laLng)
	if math.Abs(km-3944) > 10 {
		t.Errorf("NYC-LA distance = %v km, want ~3944", km)
	}
}

func TestLatitudeRange(t *testing.T) {
	minLat, maxLat := LatitudeRange(40.0, 69.0)
	if math.Abs(minLat-39.0) > 1e-9 || math.Abs(maxLat-41.0) > 1e-9 {
		t.Errorf("LatitudeRange(40, 69mi) = (%v, %v), want (39, 41)", minLat, maxLat)
	}

	minLat, maxLat = LatitudeRange(0, 0)
	if minLat != 0 || maxLat != 0 {
		t.Errorf("LatitudeRange(0, 0) = (%v, %v), want (0, 0)", minLat, maxLat)
	}
}

func TestKmToMiles(t *testing.T) {
	if got := KmToMiles(100); math.Abs(got-62.1371) > 1e-6 {
		t.Errorf("KmToMiles(100) = %v, want 62.1371", got)
	}
}
