package glm

// Vec3FromVec2 widens v into 3D with z set to zero.
func Vec3FromVec2[T Float](v Vec2[T]) Vec3[T] {
	return v.Extend(0)
}

// VecNFromVec2 widens v into D dimensions, zero filling the components after
// y. D must be at least 2.
func VecNFromVec2[D Dim, T Float](v Vec2[T]) VecN[T, D] {
	return widen[D]([]T{v.X, v.Y})
}

// VecNFromVec3 widens v into D dimensions, zero filling the components after
// z. D must be at least 3.
func VecNFromVec3[D Dim, T Float](v Vec3[T]) VecN[T, D] {
	return widen[D]([]T{v.X, v.Y, v.Z})
}

func Vec2FromVecN[T Float](v VecN[T, D2]) Vec2[T] {
	return Vec2[T]{v.c[0], v.c[1]}
}

func Vec3FromVecN[T Float](v VecN[T, D3]) Vec3[T] {
	return Vec3[T]{v.c[0], v.c[1], v.c[2]}
}

func widen[D Dim, T Float](values []T) VecN[T, D] {
	n := dimOf[D]()
	if n < len(values) {
		panic(&DimensionError{Got: len(values), Want: n})
	}

	var v VecN[T, D]
	copy(v.c[:], values)
	return v
}
