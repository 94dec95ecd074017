package glm

import "fmt"

// Vec3 is a three component vector with named fields. It follows the same
// formulas as VecN[T, D3].
type Vec3[T Float] struct {
	X, Y, Z T
}

func (lhs Vec3[T]) At(idx int) T {
	switch idx {
	case 0:
		return lhs.X
	case 1:
		return lhs.Y
	case 2:
		return lhs.Z
	}

	panic(&OutOfBoundsError{Index: idx, Len: 3})
}

func (lhs *Vec3[T]) Set(idx int, value T) {
	switch idx {
	case 0:
		lhs.X = value
	case 1:
		lhs.Y = value
	case 2:
		lhs.Z = value
	default:
		panic(&OutOfBoundsError{Index: idx, Len: 3})
	}
}

func (lhs Vec3[T]) Dot(rhs Vec3[T]) T {
	return (lhs.X * rhs.X) + (lhs.Y * rhs.Y) + (lhs.Z * rhs.Z)
}

func (lhs Vec3[T]) LengthSqr() T {
	return lhs.Dot(lhs)
}

func (lhs Vec3[T]) Length() T {
	return sqrt(lhs.Dot(lhs))
}

// Normalize yields NaN components for the zero vector.
func (lhs Vec3[T]) Normalize() Vec3[T] {
	return lhs.DivScalar(lhs.Length())
}

func (lhs Vec3[T]) Project(onto Vec3[T]) Vec3[T] {
	return onto.MulScalar(lhs.Dot(onto) / onto.Dot(onto))
}

func (lhs Vec3[T]) Add(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs.X + rhs.X,
		lhs.Y + rhs.Y,
		lhs.Z + rhs.Z,
	}
}

func (lhs Vec3[T]) Sub(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs.X - rhs.X,
		lhs.Y - rhs.Y,
		lhs.Z - rhs.Z,
	}
}

func (lhs Vec3[T]) MulScalar(s T) Vec3[T] {
	return Vec3[T]{
		lhs.X * s,
		lhs.Y * s,
		lhs.Z * s,
	}
}

func (lhs Vec3[T]) DivScalar(s T) Vec3[T] {
	return Vec3[T]{
		lhs.X / s,
		lhs.Y / s,
		lhs.Z / s,
	}
}

func (lhs Vec3[T]) VecTo(rhs Vec3[T]) Vec3[T] {
	return rhs.Sub(lhs)
}

func (lhs Vec3[T]) Distance(rhs Vec3[T]) T {
	return lhs.VecTo(rhs).Length()
}

func (lhs Vec3[T]) Cross(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs.Y*rhs.Z - lhs.Z*rhs.Y,
		-(lhs.X*rhs.Z - lhs.Z*rhs.X),
		lhs.X*rhs.Y - lhs.Y*rhs.X,
	}
}

func (lhs Vec3[T]) VecN() VecN[T, D3] {
	return VecN[T, D3]{c: [MaxDim]T{lhs.X, lhs.Y, lhs.Z}}
}

func (lhs Vec3[T]) XYZ() (x, y, z T) {
	x = lhs.X
	y = lhs.Y
	z = lhs.Z
	return
}

func (lhs Vec3[T]) IsFinite() bool {
	return isFinite(lhs.X) && isFinite(lhs.Y) && isFinite(lhs.Z)
}

func (lhs Vec3[T]) Equal(rhs Vec3[T]) bool {
	return lhs.EqualWithin(rhs, DefaultMargin)
}

func (lhs Vec3[T]) EqualWithin(rhs Vec3[T], m Margin) bool {
	return ApproxEqualWithin(lhs.X, rhs.X, m) &&
		ApproxEqualWithin(lhs.Y, rhs.Y, m) &&
		ApproxEqualWithin(lhs.Z, rhs.Z, m)
}

func (lhs Vec3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", lhs.X, lhs.Y, lhs.Z)
}
