package glm

import "iter"

// All returns the components in index order. The sequence can be iterated
// any number of times.
func (lhs VecN[T, D]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for idx := range lhs.Len() {
			if !yield(lhs.c[idx]) {
				return
			}
		}
	}
}

// Indexed returns the components together with their index.
func (lhs VecN[T, D]) Indexed() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for idx := range lhs.Len() {
			if !yield(idx, lhs.c[idx]) {
				return
			}
		}
	}
}

// VecNFrom collects seq into a vector. If seq ends early the remaining
// components are zero. A sequence longer than D.Len() panics with an
// *OutOfBoundsError.
func VecNFrom[D Dim, T Float](seq iter.Seq[T]) VecN[T, D] {
	var v VecN[T, D]

	idx := 0
	for value := range seq {
		v.Set(idx, value)
		idx++
	}

	return v
}
