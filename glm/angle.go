package glm

import "math"

// Rad is an angle in radians.
type Rad float64

func DegToRad[T Float](deg T) Rad {
	return Rad(float64(deg) * (math.Pi / 180))
}

func RadToDeg[T Float](rad Rad) T {
	return T(float64(rad) * (180 / math.Pi))
}

func sincos[T Float](r Rad) (T, T) {
	s, c := math.Sincos(float64(r))
	return T(s), T(c)
}
