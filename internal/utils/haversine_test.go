package utils

import (
	"math"
	"testing"
)

func TestHaversineKmCoincidentPoints(t *testing.T) {
	points := [][2]float64{{0, 0}, {-33.4489, -70.6693}, {89.9, 179.9}, {-45, -120}}
	for _, p := range points {
		if d := HaversineKm(p[0], p[1], p[0], p[1]); d != 0 {
			t.Fatalf("expected 0 for %v, got %f", p, d)
		}
	}
}

func TestHaversineKmSymmetric(t *testing.T) {
	d1 := HaversineKm(-33.4489, -70.6693, -36.8201, -73.0444)
	d2 := HaversineKm(-36.8201, -73.0444, -33.4489, -70.6693)
	if d1 != d2 {
		t.Fatalf("expected symmetric distance, got %f and %f", d1, d2)
	}
}

func TestHaversineKmKnownDistance(t *testing.T) {
	// one degree of latitude along a meridian
	d := HaversineKm(0, 0, 1, 0)
	want := earthRadiusKm * math.Pi / 180
	if math.Abs(d-want) > 1e-9 {
		t.Fatalf("expected %f, got %f", want, d)
	}

	// Santiago to Concepcion is roughly 430 km
	d = HaversineKm(-33.4489, -70.6693, -36.8201, -73.0444)
	if d < 420 || d > 440 {
		t.Fatalf("unexpected Santiago-Concepcion distance: %f", d)
	}
}

func TestHaversineKmAntipodal(t *testing.T) {
	d := HaversineKm(0, 0, 0, 180)
	want := earthRadiusKm * math.Pi
	if math.IsNaN(d) || math.Abs(d-want) > 1e-6 {
		t.Fatalf("expected %f, got %f", want, d)
	}
}
