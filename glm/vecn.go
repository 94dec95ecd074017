package glm

import (
	"fmt"
	"slices"
)

// VecN is a vector of D.Len() components of type T.
//
// The zero value is the zero vector. Storage beyond D.Len() is always zero, so
// == compares two vectors bitwise. Use Equal for the usual approximate
// comparison.
type VecN[T Float, D Dim] struct {
	c [MaxDim]T
}

// VecNOf builds a vector from exactly D.Len() components. Any other count
// panics with a *DimensionError.
func VecNOf[D Dim, T Float](components ...T) VecN[T, D] {
	n := dimOf[D]()
	if len(components) != n {
		panic(&DimensionError{Got: len(components), Want: n})
	}

	var v VecN[T, D]
	copy(v.c[:n], components)
	return v
}

// VecNFromSlice copies values into a new vector. A shorter slice leaves the
// remaining components zero, a longer one panics with an *OutOfBoundsError.
func VecNFromSlice[D Dim, T Float](values []T) VecN[T, D] {
	n := dimOf[D]()
	if len(values) > n {
		panic(&OutOfBoundsError{Index: n, Len: n})
	}

	var v VecN[T, D]
	copy(v.c[:n], values)
	return v
}

func (lhs VecN[T, D]) Len() int {
	return dimOf[D]()
}

func (lhs VecN[T, D]) At(idx int) T {
	checkIndex(idx, lhs.Len())
	return lhs.c[idx]
}

func (lhs *VecN[T, D]) Set(idx int, value T) {
	checkIndex(idx, lhs.Len())
	lhs.c[idx] = value
}

// Components returns a copy of the components.
func (lhs VecN[T, D]) Components() []T {
	return slices.Clone(lhs.c[:lhs.Len()])
}

// Slice returns a copy of the components in [from, to).
func (lhs VecN[T, D]) Slice(from, to int) []T {
	n := lhs.Len()
	return slices.Clone(lhs.c[:n:n][from:to])
}

func (lhs VecN[T, D]) Dot(rhs VecN[T, D]) T {
	var sum T
	for idx := range lhs.Len() {
		sum += lhs.c[idx] * rhs.c[idx]
	}

	return sum
}

func (lhs VecN[T, D]) LengthSqr() T {
	return lhs.Dot(lhs)
}

func (lhs VecN[T, D]) Length() T {
	return sqrt(lhs.Dot(lhs))
}

// Normalize divides the vector by its length. The zero vector has no
// direction, normalizing it yields NaN components.
func (lhs VecN[T, D]) Normalize() VecN[T, D] {
	return lhs.DivScalar(lhs.Length())
}

// Project returns the orthogonal projection of lhs onto the direction of
// onto. Projecting onto the zero vector yields NaN components.
func (lhs VecN[T, D]) Project(onto VecN[T, D]) VecN[T, D] {
	return onto.MulScalar(lhs.Dot(onto) / onto.Dot(onto))
}

func (lhs VecN[T, D]) Add(rhs VecN[T, D]) VecN[T, D] {
	var out VecN[T, D]
	for idx := range lhs.Len() {
		out.c[idx] = lhs.c[idx] + rhs.c[idx]
	}

	return out
}

func (lhs VecN[T, D]) Sub(rhs VecN[T, D]) VecN[T, D] {
	var out VecN[T, D]
	for idx := range lhs.Len() {
		out.c[idx] = lhs.c[idx] - rhs.c[idx]
	}

	return out
}

func (lhs VecN[T, D]) MulScalar(s T) VecN[T, D] {
	var out VecN[T, D]
	for idx := range lhs.Len() {
		out.c[idx] = lhs.c[idx] * s
	}

	return out
}

// DivScalar divides every component by s. Dividing by zero follows IEEE 754
// and produces infinities or NaN.
func (lhs VecN[T, D]) DivScalar(s T) VecN[T, D] {
	var out VecN[T, D]
	for idx := range lhs.Len() {
		out.c[idx] = lhs.c[idx] / s
	}

	return out
}

// ScalarMul is s * v, the commuted form of v.MulScalar(s).
func ScalarMul[T Float, D Dim](s T, v VecN[T, D]) VecN[T, D] {
	return v.MulScalar(s)
}

// VecTo returns the vector pointing from lhs to rhs.
func (lhs VecN[T, D]) VecTo(rhs VecN[T, D]) VecN[T, D] {
	return rhs.Sub(lhs)
}

func (lhs VecN[T, D]) Distance(rhs VecN[T, D]) T {
	return lhs.VecTo(rhs).Length()
}

// Map applies fn to every component.
func (lhs VecN[T, D]) Map(fn func(T) T) VecN[T, D] {
	var out VecN[T, D]
	for idx := range lhs.Len() {
		out.c[idx] = fn(lhs.c[idx])
	}

	return out
}

func (lhs VecN[T, D]) IsFinite() bool {
	for idx := range lhs.Len() {
		if !isFinite(lhs.c[idx]) {
			return false
		}
	}

	return true
}

func (lhs VecN[T, D]) Equal(rhs VecN[T, D]) bool {
	return lhs.EqualWithin(rhs, DefaultMargin)
}

func (lhs VecN[T, D]) EqualWithin(rhs VecN[T, D], m Margin) bool {
	for idx := range lhs.Len() {
		if !ApproxEqualWithin(lhs.c[idx], rhs.c[idx], m) {
			return false
		}
	}

	return true
}

func (lhs VecN[T, D]) String() string {
	return fmt.Sprint(lhs.c[:lhs.Len()])
}

// Perp returns v rotated by 90 degrees clockwise, (y, -x).
//
// This is not a cross product, there is no out of plane result in 2D. It only
// yields a vector perpendicular to v.
func Perp[T Float](v VecN[T, D2]) VecN[T, D2] {
	return VecN[T, D2]{c: [MaxDim]T{v.c[1], -v.c[0]}}
}

// Cross is the right-handed cross product of two 3D vectors.
func Cross[T Float](lhs, rhs VecN[T, D3]) VecN[T, D3] {
	a, b := lhs.c, rhs.c

	return VecN[T, D3]{c: [MaxDim]T{
		a[1]*b[2] - a[2]*b[1],
		-(a[0]*b[2] - a[2]*b[0]),
		a[0]*b[1] - a[1]*b[0],
	}}
}

// Angle returns the unit vector at angle theta from the x axis.
func Angle[T Float](theta Rad) VecN[T, D2] {
	s, c := sincos[T](theta)
	return VecN[T, D2]{c: [MaxDim]T{c, s}}
}
