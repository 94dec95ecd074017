package glm

import "testing"

func TestDeterminant(t *testing.T) {
	one := MatfOf[D1, D1]([]float32{5})
	if d := Determinant(one); d != 5 {
		t.Fatalf("det1=%v, want 5", d)
	}

	two := MatfOf[D2, D2]([]float32{4, 7}, []float32{2, 6})
	if d := Determinant(two); d != 10 {
		t.Fatalf("det2=%v, want 10", d)
	}

	three := MatfOf[D3, D3](
		[]float32{6, 1, 1},
		[]float32{4, -2, 5},
		[]float32{2, 8, 7},
	)
	if d := Determinant(three); d != -306 {
		t.Fatalf("det3=%v, want -306", d)
	}

	triangular := MatfOf[D4, D4](
		[]float32{2, 5, 20, 80},
		[]float32{0, -10, 3, 3},
		[]float32{0, 0, 1, 0},
		[]float32{0, 0, 0, 4},
	)
	if d := Determinant(triangular); d != -80 {
		t.Fatalf("det4=%v, want -80", d)
	}
}

func TestDeterminantProperties(t *testing.T) {
	if d := Determinant(Identity[D6, float64]()); d != 1 {
		t.Fatalf("det(I)=%v, want 1", d)
	}

	singular := MatfOf[D2, D2]([]float32{1, 2}, []float32{2, 4})
	if d := Determinant(singular); d != 0 {
		t.Fatalf("det(singular)=%v, want 0", d)
	}

	m := MatfOf[D3, D3](
		[]float32{1, 2, 0},
		[]float32{-1, 3, 4},
		[]float32{2, 0, 5},
	)

	if !ApproxEqual(Determinant(m), Determinant(m.Transpose())) {
		t.Fatalf("det(m)=%v det(mT)=%v", Determinant(m), Determinant(m.Transpose()))
	}

	// swapping two rows flips the sign
	swapped := MatFromRows[D3](m.Row(1), m.Row(0), m.Row(2))
	if !ApproxEqual(Determinant(swapped), -Determinant(m)) {
		t.Fatalf("det(swapped)=%v det(m)=%v", Determinant(swapped), Determinant(m))
	}

	n := MatfOf[D3, D3](
		[]float32{2, 0, 1},
		[]float32{1, 1, 0},
		[]float32{0, 3, 1},
	)

	if !ApproxEqual(Determinant(m.Mul(n)), Determinant(m)*Determinant(n)) {
		t.Fatalf("det(mn)=%v, det(m)det(n)=%v", Determinant(m.Mul(n)), Determinant(m)*Determinant(n))
	}
}

func TestDeterminantDiagonal(t *testing.T) {
	var m Matd[D8, D8]
	want := 1.0

	for idx := range 8 {
		m.Set(idx, idx, float64(idx+1))
		want *= float64(idx + 1)
	}

	if d := Determinant(m); d != want {
		t.Fatalf("det=%v, want %v", d, want)
	}
}
