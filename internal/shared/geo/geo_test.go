package geo

import (
	"math"
	"testing"
)

func TestHaversineKm(t *testing.T) {
	// Madurai (9.9252, 78.1198) to Thanjavur (10.7870, 79.1378) ~ 140-150 km
	d := HaversineKm(9.9252, 78.1198, 10.7870, 79.1378)
	if d < 130 || d > 160 {
		t.Fatalf("unexpected distance: %v", d)
	}
}

func TestHaversineKmZeroForSamePoint(t *testing.T) {
	if d := HaversineKm(9.9252, 78.1198, 9.9252, 78.1198); d != 0 {
		t.Fatalf("expected zero distance, got %v", d)
	}
}

func TestHaversineKmSymmetric(t *testing.T) {
	a := HaversineKm(9.9252, 78.1198, 13.0827, 80.2707)
	b := HaversineKm(13.0827, 80.2707, 9.9252, 78.1198)
	if math.Abs(a-b) > 1e-9 {
		t.Fatalf("expected symmetric distances: %v vs %v", a, b)
	}
}

func TestHaversineKmAntipodal(t *testing.T) {
	d := HaversineKm(0, 0, 0, 180)
	if math.IsNaN(d) || math.IsInf(d, 0) {
		t.Fatalf("antipodal distance not finite: %v", d)
	}
	// Half the Earth's circumference, ~20015 km.
	if d < 19000 || d > 21000 {
		t.Fatalf("unexpected antipodal distance: %v", d)
	}
}

func TestHaversineKmPropagatesNaN(t *testing.T) {
	if d := HaversineKm(math.NaN(), 78.1198, 9.9252, 78.1198); !math.IsNaN(d) {
		t.Fatalf("expected NaN to propagate, got %v", d)
	}
}

func TestRoundKm1(t *testing.T) {
	if got := RoundKm1(2.5499); got != 2.5 {
		t.Fatalf("expected 2.5, got %v", got)
	}
	if got := RoundKm1(2.46); got != 2.5 {
		t.Fatalf("expected 2.5, got %v", got)
	}
	if got := RoundKm1(2.44); got != 2.4 {
		t.Fatalf("expected 2.4, got %v", got)
	}
}
