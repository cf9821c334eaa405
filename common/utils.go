package common

import "cmp"

// Coalesce returns the first non-zero value, or the zero value if every value is zero.
// Used to fall back to package defaults when a caller leaves a setting unset.
//
// Parameters:
//   - values: candidates in priority order
//
// Returns:
//   - T: the first non-zero candidate, or the zero value
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// Clamp limits v to the closed range [lo, hi]. lo wins if the bounds are inverted.
//
// Parameters:
//   - v: the value to limit
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - T: v limited to [lo, hi]
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}
