package internal

import "math"

// NormalizeAngle maps an angle in radians into (-pi, pi].
func NormalizeAngle(angle float64) float64 {
	normalized := math.Remainder(angle, 2*math.Pi)
	if normalized <= -math.Pi {
		normalized += 2 * math.Pi
	}
	return normalized
}

// FloorMod returns the non-negative remainder of value divided by modulus.
// A modulus <= 0 returns value unchanged.
func FloorMod(value, modulus int) int {
	if modulus <= 0 {
		return value
	}
	remainder := value % modulus
	if remainder < 0 {
		remainder += modulus
	}
	return remainder
}

// MaxRoundable bounds RoundToInt. Every integer up to it is exact in a float64.
const MaxRoundable = min(1<<53, math.MaxInt)

// RoundToInt rounds half away from zero and converts to int. Results
// saturate at +-MaxRoundable and NaN maps to 0.
func RoundToInt(value float64) int {
	switch {
	case math.IsNaN(value):
		return 0
	case value >= MaxRoundable:
		return MaxRoundable
	case value <= -MaxRoundable:
		return -MaxRoundable
	}
	return int(math.Round(value))
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}
