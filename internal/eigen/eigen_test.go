// Copyright ©2024 The Hafnian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eigen

import (
	"math/cmplx"
	"sort"
	"testing"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"
)

func sortComplex(v []complex128) {
	sort.Slice(v, func(i, j int) bool {
		if real(v[i]) != real(v[j]) {
			return real(v[i]) < real(v[j])
		}
		return imag(v[i]) < imag(v[j])
	})
}

func closeEnough(got, want []complex128, tol float64) bool {
	sortComplex(got)
	sortComplex(want)
	return cmplxs.EqualApprox(got, want, tol)
}

func TestRealZero(t *testing.T) {
	// mat.NewDense panics on a zero dimension, so the zero-sized case is
	// built directly from the zero value rather than via the constructor.
	values, ok := Real(new(mat.Dense))
	if !ok {
		t.Fatal("Real(0x0) should not fail")
	}
	if len(values) != 0 {
		t.Fatalf("Real(0x0) = %v, want empty", values)
	}
}

func TestRealIdentity(t *testing.T) {
	for i, test := range []struct {
		n int
	}{
		{1}, {2}, {4},
	} {
		a := mat.NewDense(test.n, test.n, nil)
		for k := 0; k < test.n; k++ {
			a.Set(k, k, 1)
		}
		values, ok := Real(a)
		if !ok {
			t.Fatalf("test %d: Real failed to converge", i)
		}
		want := make([]complex128, test.n)
		for k := range want {
			want[k] = 1
		}
		if !closeEnough(values, want, 1e-8) {
			t.Errorf("test %d: Real(I_%d) = %v, want %v", i, test.n, values, want)
		}
	}
}

func TestRealSymmetric(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{2, 1, 1, 2})
	values, ok := Real(a)
	if !ok {
		t.Fatal("Real failed to converge")
	}
	want := []complex128{1, 3}
	if !closeEnough(values, want, 1e-8) {
		t.Errorf("Real = %v, want %v", values, want)
	}
}

func TestComplexZero(t *testing.T) {
	values, ok := Complex(0, nil)
	if !ok {
		t.Fatal("Complex(0) should not fail")
	}
	if len(values) != 0 {
		t.Fatalf("Complex(0) = %v, want empty", values)
	}
}

func TestComplexOne(t *testing.T) {
	values, ok := Complex(1, []complex128{3 + 4i})
	if !ok {
		t.Fatal("Complex(1) failed to converge")
	}
	if !closeEnough(values, []complex128{3 + 4i}, 1e-9) {
		t.Errorf("Complex(1x1) = %v, want [3+4i]", values)
	}
}

func TestComplexDiagonal(t *testing.T) {
	n := 3
	data := make([]complex128, n*n)
	diag := []complex128{1 + 1i, 2 - 2i, -3}
	for i, d := range diag {
		data[i*n+i] = d
	}
	values, ok := Complex(n, data)
	if !ok {
		t.Fatal("Complex failed to converge")
	}
	if !closeEnough(values, diag, 1e-8) {
		t.Errorf("Complex(diag) = %v, want %v", values, diag)
	}
}

func TestComplexSymmetric2x2(t *testing.T) {
	// [[a, b], [b, c]] (complex symmetric, not Hermitian) has eigenvalues
	// the roots of λ^2 - (a+c)λ + (ac-b^2) = 0.
	a := complex(1, 2)
	b := complex(0, 1)
	c := complex(-1, 0.5)
	n := 2
	data := []complex128{a, b, b, c}
	values, ok := Complex(n, data)
	if !ok {
		t.Fatal("Complex failed to converge")
	}

	tr := a + c
	det := a*c - b*b
	disc := cmplx.Sqrt(tr*tr - 4*det)
	want := []complex128{(tr + disc) / 2, (tr - disc) / 2}
	if !closeEnough(values, want, 1e-7) {
		t.Errorf("Complex(2x2) = %v, want %v", values, want)
	}
}

func TestComplexNonNormal(t *testing.T) {
	// Strictly upper-triangular-plus-diagonal matrix: eigenvalues are
	// exactly the diagonal entries regardless of the off-diagonal terms.
	n := 4
	data := make([]complex128, n*n)
	diag := []complex128{1, 2, 3, 4}
	for i := 0; i < n; i++ {
		data[i*n+i] = diag[i]
		for j := i + 1; j < n; j++ {
			data[i*n+j] = complex(float64(i+j), 0.5)
		}
	}
	values, ok := Complex(n, data)
	if !ok {
		t.Fatal("Complex failed to converge")
	}
	if !closeEnough(values, diag, 1e-6) {
		t.Errorf("Complex(triangular) = %v, want %v", values, diag)
	}
}
