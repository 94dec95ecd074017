package glm

// Determinant computes the determinant of a square matrix by cofactor
// expansion along the first row. This is O(N!), which is fine up to MaxDim.
func Determinant[T Float, D Dim](m Mat[T, D, D]) T {
	sq := square[T]{n: m.Rows()}
	for idx := range sq.n {
		sq.a[idx] = m.rows[idx].c
	}

	return sq.det()
}

// square is an n by n matrix with a dimension only known at runtime. Minors
// shrink below any compile time dimension, so the recursion works on this.
type square[T Float] struct {
	n int
	a [MaxDim][MaxDim]T
}

func (s *square[T]) det() T {
	if s.n == 1 {
		return s.a[0][0]
	}

	var sum T

	sign := T(1)
	for z := range s.n {
		minor := s.minor(z)
		sum += sign * s.a[0][z] * minor.det()
		sign = -sign
	}

	return sum
}

// minor strips the first row and the given column.
func (s *square[T]) minor(col int) square[T] {
	out := square[T]{n: s.n - 1}

	for row := 1; row < s.n; row++ {
		dst := 0
		for src := range s.n {
			if src == col {
				continue
			}

			out.a[row-1][dst] = s.a[row][src]
			dst++
		}
	}

	return out
}
