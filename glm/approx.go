package glm

import (
	"math"
	"unsafe"
)

// Margin is the tolerance used to compare two floats. Two values are equal if
// their absolute difference is at most Epsilon, or if they are at most ULPs
// representable values apart.
type Margin struct {
	Epsilon float64
	ULPs    uint64
}

// DefaultMargin is used by all Equal methods.
var DefaultMargin = Margin{Epsilon: 1e-5, ULPs: 4}

// ApproxEqual compares a and b using DefaultMargin.
func ApproxEqual[T Float](a, b T) bool {
	return ApproxEqualWithin(a, b, DefaultMargin)
}

// ApproxEqualWithin compares a and b using the given margin. NaN is never
// equal to anything, infinities are only equal to themselves.
func ApproxEqualWithin[T Float](a, b T, m Margin) bool {
	if a == b {
		return true
	}

	if !isFinite(a) || !isFinite(b) {
		return false
	}

	diff := a - b
	if diff < 0 {
		diff = -diff
	}

	if diff <= T(m.Epsilon) {
		return true
	}

	return ulps(a, b) <= m.ULPs
}

// ulps returns the distance of a and b in units of least precision, comparing
// their raw bit patterns.
func ulps[T Float](a, b T) uint64 {
	if unsafe.Sizeof(a) == 4 {
		ai := int64(int32(math.Float32bits(float32(a))))
		bi := int64(int32(math.Float32bits(float32(b))))
		return absDiff(ai, bi)
	}

	ai := int64(math.Float64bits(float64(a)))
	bi := int64(math.Float64bits(float64(b)))
	if (ai < 0) != (bi < 0) {
		return math.MaxUint64
	}

	return absDiff(ai, bi)
}

func absDiff(a, b int64) uint64 {
	if a > b {
		return uint64(a - b)
	}

	return uint64(b - a)
}
