package glm

import "strings"

// Mat is a matrix of R rows, each a VecN[T, C].
//
// The zero value is the zero matrix. Rows and storage beyond R and C are
// always zero, so == compares two matrices bitwise.
type Mat[T Float, R, C Dim] struct {
	rows [MaxDim]VecN[T, C]
}

// MatOf builds a matrix from a nested literal. There must be exactly R rows
// of exactly C values each, otherwise MatOf panics with a *DimensionError.
func MatOf[R, C Dim, T Float](rows ...[]T) Mat[T, R, C] {
	n := dimOf[R]()
	if len(rows) != n {
		panic(&DimensionError{Got: len(rows), Want: n})
	}

	var m Mat[T, R, C]
	for idx, row := range rows {
		m.rows[idx] = VecNOf[C](row...)
	}

	return m
}

// MatFromRows builds a matrix from exactly R row vectors.
func MatFromRows[R, C Dim, T Float](rows ...VecN[T, C]) Mat[T, R, C] {
	n := dimOf[R]()
	if len(rows) != n {
		panic(&DimensionError{Got: len(rows), Want: n})
	}

	var m Mat[T, R, C]
	copy(m.rows[:], rows)
	return m
}

func Identity[D Dim, T Float]() Mat[T, D, D] {
	var m Mat[T, D, D]
	for idx := range dimOf[D]() {
		m.rows[idx].c[idx] = 1
	}

	return m
}

// Rotation is the counter-clockwise 2D rotation by theta.
func Rotation[T Float](theta Rad) Mat[T, D2, D2] {
	s, c := sincos[T](theta)

	var m Mat[T, D2, D2]
	m.rows[0].c[0], m.rows[0].c[1] = c, -s
	m.rows[1].c[0], m.rows[1].c[1] = s, c
	return m
}

func (lhs Mat[T, R, C]) Rows() int {
	return dimOf[R]()
}

func (lhs Mat[T, R, C]) Cols() int {
	return dimOf[C]()
}

func (lhs Mat[T, R, C]) Row(idx int) VecN[T, C] {
	checkIndex(idx, lhs.Rows())
	return lhs.rows[idx]
}

func (lhs *Mat[T, R, C]) SetRow(idx int, row VecN[T, C]) {
	checkIndex(idx, lhs.Rows())
	lhs.rows[idx] = row
}

func (lhs Mat[T, R, C]) Col(idx int) VecN[T, R] {
	checkIndex(idx, lhs.Cols())

	var col VecN[T, R]
	for row := range lhs.Rows() {
		col.c[row] = lhs.rows[row].c[idx]
	}

	return col
}

// At returns the element in row i and column j. An invalid row panics from
// the matrix, an invalid column from the row vector.
func (lhs Mat[T, R, C]) At(i, j int) T {
	return lhs.Row(i).At(j)
}

func (lhs *Mat[T, R, C]) Set(i, j int, value T) {
	checkIndex(i, lhs.Rows())
	lhs.rows[i].Set(j, value)
}

func (lhs Mat[T, R, C]) Transpose() Mat[T, C, R] {
	var out Mat[T, C, R]
	for i := range lhs.Rows() {
		for j := range lhs.Cols() {
			out.rows[j].c[i] = lhs.rows[i].c[j]
		}
	}

	return out
}

func (lhs Mat[T, R, C]) MulScalar(s T) Mat[T, R, C] {
	var out Mat[T, R, C]
	for idx := range lhs.Rows() {
		out.rows[idx] = lhs.rows[idx].MulScalar(s)
	}

	return out
}

func (lhs Mat[T, R, C]) Add(rhs Mat[T, R, C]) Mat[T, R, C] {
	var out Mat[T, R, C]
	for idx := range lhs.Rows() {
		out.rows[idx] = lhs.rows[idx].Add(rhs.rows[idx])
	}

	return out
}

func (lhs Mat[T, R, C]) Sub(rhs Mat[T, R, C]) Mat[T, R, C] {
	var out Mat[T, R, C]
	for idx := range lhs.Rows() {
		out.rows[idx] = lhs.rows[idx].Sub(rhs.rows[idx])
	}

	return out
}

// Mul multiplies with a square matrix. Use MatMul for other shapes.
func (lhs Mat[T, R, C]) Mul(rhs Mat[T, C, C]) Mat[T, R, C] {
	return MatMul(lhs, rhs)
}

// Transform returns lhs * v.
func (lhs Mat[T, R, C]) Transform(v VecN[T, C]) VecN[T, R] {
	var out VecN[T, R]
	for idx := range lhs.Rows() {
		out.c[idx] = lhs.rows[idx].Dot(v)
	}

	return out
}

// MatMul returns the matrix product lhs * rhs. Element (i, j) is the dot
// product of row i of lhs and column j of rhs.
func MatMul[T Float, N, M, Z Dim](lhs Mat[T, N, M], rhs Mat[T, M, Z]) Mat[T, N, Z] {
	cols := rhs.Transpose()

	var out Mat[T, N, Z]
	for i := range lhs.Rows() {
		for j := range rhs.Cols() {
			out.rows[i].c[j] = lhs.rows[i].Dot(cols.rows[j])
		}
	}

	return out
}

func (lhs Mat[T, R, C]) IsFinite() bool {
	for idx := range lhs.Rows() {
		if !lhs.rows[idx].IsFinite() {
			return false
		}
	}

	return true
}

func (lhs Mat[T, R, C]) Equal(rhs Mat[T, R, C]) bool {
	return lhs.EqualWithin(rhs, DefaultMargin)
}

func (lhs Mat[T, R, C]) EqualWithin(rhs Mat[T, R, C], m Margin) bool {
	for idx := range lhs.Rows() {
		if !lhs.rows[idx].EqualWithin(rhs.rows[idx], m) {
			return false
		}
	}

	return true
}

func (lhs Mat[T, R, C]) String() string {
	var sb strings.Builder

	sb.WriteByte('[')
	for idx := range lhs.Rows() {
		if idx > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteString(lhs.rows[idx].String())
	}
	sb.WriteByte(']')

	return sb.String()
}
