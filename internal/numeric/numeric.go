// Package numeric provides small generic numeric helpers; the flow
// package uses Min for its bottleneck computation.
package numeric

import "golang.org/x/exp/constraints"

// Min returns the smaller of a and b.
func Min[T constraints.Signed](a, b T) T {
	if a < b {
		return a
	}

	return b
}

// Max returns the larger of a and b.
func Max[T constraints.Signed](a, b T) T {
	if a > b {
		return a
	}

	return b
}

// Clamp constrains v to the closed interval [lo, hi].
func Clamp[T constraints.Signed](v, lo, hi T) T {
	return Max(lo, Min(v, hi))
}
