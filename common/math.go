package common

import "cmp"

// Clamp limits v to the closed range [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - T: v limited to [lo, hi]
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// UnitToByte converts a [0, 1] channel value to 0..255, rounding to nearest.
// Out-of-range values saturate.
//
// Parameters:
//   - v: the channel value
//
// Returns:
//   - uint8: the 8-bit channel value
func UnitToByte(v float32) uint8 {
	return uint8(Clamp(v, 0, 1)*255 + 0.5)
}
