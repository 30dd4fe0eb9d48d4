package common

import "math"

// DefaultScale converts physics units to render units (pixels).
const DefaultScale = 16.0

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp01 clamps v into [0, 1].
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func Radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// WorldToPhysics divides a render-space length by scale.
func WorldToPhysics(v, scale float64) float64 {
	if scale == 0 {
		return v
	}
	return v / scale
}

// PhysicsToWorld multiplies a physics-space length by scale.
func PhysicsToWorld(v, scale float64) float64 {
	if scale == 0 {
		return v
	}
	return v * scale
}
