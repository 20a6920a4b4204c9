// Copyright ©2024 The Hafnian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subset

import (
	"math/cmplx"
	"reflect"
	"testing"
)

func TestPositions(t *testing.T) {
	for i, test := range []struct {
		x    uint64
		m    int
		want []int
	}{
		{x: 0, m: 3, want: []int{}},
		{x: 1, m: 3, want: []int{0, 1}},
		{x: 0b101, m: 3, want: []int{0, 1, 4, 5}},
		{x: 0b111, m: 3, want: []int{0, 1, 2, 3, 4, 5}},
	} {
		got := positions(test.x, test.m)
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("test %d: positions(%b, %d) = %v, want %v", i, test.x, test.m, got, test.want)
		}
	}
}

func TestSign(t *testing.T) {
	for i, test := range []struct {
		k, m int
		want float64
	}{
		{0, 0, 1},
		{0, 1, -1},
		{1, 1, 1},
		{1, 2, -1},
		{2, 2, 1},
	} {
		if got := sign(test.k, test.m); got != test.want {
			t.Errorf("test %d: sign(%d, %d) = %v, want %v", i, test.k, test.m, got, test.want)
		}
	}
}

// TestFoldEmptySubset checks the m>0, x=0 edge case described in spec.md
// §4.3: a zero trace vector still yields comb[new][m] = 0 via the
// ordinary loop (no special casing for the empty subset).
func TestFoldEmptySubset(t *testing.T) {
	for _, m := range []int{0, 1, 2, 5} {
		got := fold(m, func(i int) complex128 { return 0 })
		var want complex128
		if m == 0 {
			want = 1
		}
		if cmplx.Abs(got-want) > 1e-12 {
			t.Errorf("fold(%d, zero factor) = %v, want %v", m, got, want)
		}
	}
}

// TestFoldConstantFactor checks fold against the closed form for
// Π_i exp(a z^i) truncated at z^m when a is the same at every step: the
// degree-m coefficient of exp(a(z+z^2+...+z^m)) can be computed directly
// from the exponential series for small m.
func TestFoldConstantFactor(t *testing.T) {
	a := complex(0.3, -0.1)
	m := 3
	got := fold(m, func(i int) complex128 { return a })

	// Π_{i=1}^{3} exp(a z^i) = exp(a z) exp(a z^2) exp(a z^3); the
	// z^3 coefficient is a^3/6 (from exp(az) alone) + a (from exp(az^3))
	// + a*a (cross term z^1 * z^2, coefficient a * a).
	want := a*a*a/6 + a + a*a
	if cmplx.Abs(got-want) > 1e-9 {
		t.Errorf("fold(3, constant) = %v, want %v", got, want)
	}
}
