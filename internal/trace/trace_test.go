// Copyright ©2024 The Hafnian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"math/cmplx"
	"testing"
)

func TestPowers(t *testing.T) {
	for i, test := range []struct {
		lambda []complex128
		ell    int
		want   []complex128
	}{
		{lambda: nil, ell: 0, want: []complex128{}},
		{lambda: []complex128{2}, ell: 3, want: []complex128{2, 4, 8}},
		{lambda: []complex128{1, 2, 3}, ell: 4, want: []complex128{6, 14, 36, 98}},
		{lambda: []complex128{1i, -1i}, ell: 2, want: []complex128{0, -2}},
	} {
		got := Powers(test.lambda, test.ell)
		if len(got) != len(test.want) {
			t.Fatalf("test %d: len(Powers) = %d, want %d", i, len(got), len(test.want))
		}
		for k := range got {
			if cmplx.Abs(got[k]-test.want[k]) > 1e-9 {
				t.Errorf("test %d: Powers()[%d] = %v, want %v", i, k, got[k], test.want[k])
			}
		}
	}
}
