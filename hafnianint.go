// Copyright ©2024 The Hafnian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hafnian

import "github.com/XanaduAI/hafnian/internal/recint"

// HafnianInt returns the exact hafnian of the integer matrix a, computed
// without any floating-point arithmetic via the recursive vertex
// elimination procedure in internal/recint. It is the appropriate choice
// whenever the entries are integers and the result must be exact, at the
// cost of memory that grows with the matrix's order rather than with the
// matching count's subset expansion.
func HafnianInt(a *IntMatrix) (int64, error) {
	n := a.Dims()
	m, err := evenOrder(n, n)
	if err != nil {
		return 0, err
	}
	if m == 0 {
		return 1, nil
	}
	data := make([]int64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data[i*n+j] = a.At(i, j)
		}
	}
	return recint.Hafnian(n, data), nil
}
