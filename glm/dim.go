// Package glm provides fixed-dimension vectors and matrices.
//
// Dimensions are types (D1 to D8), so adding a 2D vector to a 3D vector or
// multiplying matrices of incompatible shapes does not compile. All vectors
// and matrices are plain values backed by fixed arrays.
package glm

// MaxDim is the largest dimension of a vector or matrix.
const MaxDim = 8

// Dim is a compile time dimension. It is implemented by D1 to D8 only.
type Dim interface {
	Len() int
	dim()
}

type (
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D4 struct{}
	D5 struct{}
	D6 struct{}
	D7 struct{}
	D8 struct{}
)

func (D1) Len() int { return 1 }
func (D2) Len() int { return 2 }
func (D3) Len() int { return 3 }
func (D4) Len() int { return 4 }
func (D5) Len() int { return 5 }
func (D6) Len() int { return 6 }
func (D7) Len() int { return 7 }
func (D8) Len() int { return 8 }

func (D1) dim() {}
func (D2) dim() {}
func (D3) dim() {}
func (D4) dim() {}
func (D5) dim() {}
func (D6) dim() {}
func (D7) dim() {}
func (D8) dim() {}

func dimOf[D Dim]() int {
	var d D
	return d.Len()
}
