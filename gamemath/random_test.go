package gamemath

import "testing"

// TestIntBetween_Inclusive tests that both bounds are reachable and never exceeded
func TestIntBetween_Inclusive(t *testing.T) {
	seen := map[int]bool{}
	for i := 0; i < 5000; i++ {
		v := IntBetween(2, 4)
		if v < 2 || v > 4 {
			t.Fatalf("IntBetween(2, 4) = %d, out of range", v)
		}
		seen[v] = true
	}
	for want := 2; want <= 4; want++ {
		if !seen[want] {
			t.Errorf("IntBetween(2, 4) never produced %d in 5000 draws", want)
		}
	}
}

// TestFloatBetween_HalfOpen tests the [min, max) contract
func TestFloatBetween_HalfOpen(t *testing.T) {
	for i := 0; i < 5000; i++ {
		v := FloatBetween(0.25, 1.75)
		if v < 0.25 || v >= 1.75 {
			t.Fatalf("FloatBetween(0.25, 1.75) = %v, out of range", v)
		}
	}
}
