package glm

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the set of component types a vector or matrix can hold.
type Float interface {
	constraints.Float
}

func sqrt[T Float](v T) T {
	return T(math.Sqrt(float64(v)))
}

func isFinite[T Float](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
