package glm

type VecNf[D Dim] = VecN[float32, D]
type Matf[R, C Dim] = Mat[float32, R, C]

type Vec2f = Vec2[float32]
type Vec3f = Vec3[float32]

type VecNd[D Dim] = VecN[float64, D]
type Matd[R, C Dim] = Mat[float64, R, C]

type Vec2d = Vec2[float64]
type Vec3d = Vec3[float64]

// VecNfOf is VecNOf for float32 components.
func VecNfOf[D Dim](components ...float32) VecNf[D] {
	return VecNOf[D](components...)
}

// MatfOf is MatOf for float32 components.
func MatfOf[R, C Dim](rows ...[]float32) Matf[R, C] {
	return MatOf[R, C](rows...)
}
