package common

import (
	"math"
	"testing"
)

func TestScaleRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		v     float64
		scale float64
	}{
		{"default", 128, DefaultScale},
		{"fractional", 3.5, 32},
		{"zero_scale_passthrough", 10, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := PhysicsToWorld(WorldToPhysics(c.v, c.scale), c.scale)
			if math.Abs(got-c.v) > 1e-9 {
				t.Fatalf("round trip %v -> %v", c.v, got)
			}
		})
	}
	if WorldToPhysics(128, 16) != 8 {
		t.Fatalf("expected 128/16 = 8")
	}
}

func TestClamp01(t *testing.T) {
	for _, c := range []struct{ in, want float64 }{{-0.5, 0}, {0.25, 0.25}, {1.5, 1}} {
		if got := Clamp01(c.in); got != c.want {
			t.Fatalf("Clamp01(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	if _, err := NewLogger("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if l, err := NewLogger("debug"); err != nil || l == nil {
		t.Fatalf("expected debug logger, got %v", err)
	}
}
