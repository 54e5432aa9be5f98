package service

import (
	"math"
	"testing"
)

func f64(v float64) *float64 { return &v }

func TestDistance_MissingCoordinates(t *testing.T) {
	lat := f64(37.7749)
	lon := f64(-122.4194)

	if got := Distance(nil, lon, lat, lon); !math.IsInf(got, 1) {
		t.Fatalf("expected DistanceUnknown, got %v", got)
	}
	if got := Distance(lat, nil, lat, lon); !math.IsInf(got, 1) {
		t.Fatalf("expected DistanceUnknown, got %v", got)
	}
	if got := Distance(lat, lon, nil, lon); !math.IsInf(got, 1) {
		t.Fatalf("expected DistanceUnknown, got %v", got)
	}
	if got := Distance(lat, lon, lat, nil); !math.IsInf(got, 1) {
		t.Fatalf("expected DistanceUnknown, got %v", got)
	}
}

func TestDistance_SamePoint(t *testing.T) {
	lat := f64(40.7128)
	lon := f64(-74.0060)

	if got := Distance(lat, lon, lat, lon); got != 0 {
		t.Fatalf("expected zero distance, got %v", got)
	}
}

func TestDistance_Symmetric(t *testing.T) {
	sfLat, sfLon := f64(37.7749), f64(-122.4194)
	nyLat, nyLon := f64(40.7128), f64(-74.0060)

	forward := Distance(sfLat, sfLon, nyLat, nyLon)
	backward := Distance(nyLat, nyLon, sfLat, sfLon)
	if math.Abs(forward-backward) > 1e-9 {
		t.Fatalf("expected symmetric distances, got %v and %v", forward, backward)
	}
}

func TestDistance_KnownPair(t *testing.T) {
	// San Francisco a Nueva York: ~2570 millas de circulo maximo.
	got := Distance(f64(37.7749), f64(-122.4194), f64(40.7128), f64(-74.0060))
	if got < 2500 || got > 2650 {
		t.Fatalf("expected roughly 2570 miles, got %v", got)
	}
}
