package glm

import "fmt"

// Vec2 is a two component vector with named fields. It follows the same
// formulas as VecN[T, D2].
type Vec2[T Float] struct {
	X, Y T
}

func (lhs Vec2[T]) At(idx int) T {
	switch idx {
	case 0:
		return lhs.X
	case 1:
		return lhs.Y
	}

	panic(&OutOfBoundsError{Index: idx, Len: 2})
}

func (lhs *Vec2[T]) Set(idx int, value T) {
	switch idx {
	case 0:
		lhs.X = value
	case 1:
		lhs.Y = value
	default:
		panic(&OutOfBoundsError{Index: idx, Len: 2})
	}
}

func (lhs Vec2[T]) Dot(rhs Vec2[T]) T {
	return (lhs.X * rhs.X) + (lhs.Y * rhs.Y)
}

func (lhs Vec2[T]) LengthSqr() T {
	return lhs.Dot(lhs)
}

func (lhs Vec2[T]) Length() T {
	return sqrt(lhs.Dot(lhs))
}

// Normalize yields NaN components for the zero vector.
func (lhs Vec2[T]) Normalize() Vec2[T] {
	return lhs.DivScalar(lhs.Length())
}

func (lhs Vec2[T]) Project(onto Vec2[T]) Vec2[T] {
	return onto.MulScalar(lhs.Dot(onto) / onto.Dot(onto))
}

func (lhs Vec2[T]) Add(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs.X + rhs.X,
		lhs.Y + rhs.Y,
	}
}

func (lhs Vec2[T]) Sub(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs.X - rhs.X,
		lhs.Y - rhs.Y,
	}
}

func (lhs Vec2[T]) MulScalar(s T) Vec2[T] {
	return Vec2[T]{
		lhs.X * s,
		lhs.Y * s,
	}
}

func (lhs Vec2[T]) DivScalar(s T) Vec2[T] {
	return Vec2[T]{
		lhs.X / s,
		lhs.Y / s,
	}
}

func (lhs Vec2[T]) VecTo(rhs Vec2[T]) Vec2[T] {
	return rhs.Sub(lhs)
}

func (lhs Vec2[T]) Distance(rhs Vec2[T]) T {
	return lhs.VecTo(rhs).Length()
}

// Perp returns the vector rotated by 90 degrees clockwise, (y, -x). This is
// not a real cross product but still gives a perpendicular vector.
func (lhs Vec2[T]) Perp() Vec2[T] {
	return Vec2[T]{lhs.Y, -lhs.X}
}

func (lhs Vec2[T]) Extend(z T) Vec3[T] {
	return Vec3[T]{lhs.X, lhs.Y, z}
}

func (lhs Vec2[T]) VecN() VecN[T, D2] {
	return VecN[T, D2]{c: [MaxDim]T{lhs.X, lhs.Y}}
}

func (lhs Vec2[T]) XY() (x, y T) {
	x = lhs.X
	y = lhs.Y
	return
}

func (lhs Vec2[T]) IsFinite() bool {
	return isFinite(lhs.X) && isFinite(lhs.Y)
}

func (lhs Vec2[T]) Equal(rhs Vec2[T]) bool {
	return lhs.EqualWithin(rhs, DefaultMargin)
}

func (lhs Vec2[T]) EqualWithin(rhs Vec2[T], m Margin) bool {
	return ApproxEqualWithin(lhs.X, rhs.X, m) && ApproxEqualWithin(lhs.Y, rhs.Y, m)
}

func (lhs Vec2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", lhs.X, lhs.Y)
}
