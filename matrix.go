// Copyright ©2024 The Hafnian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hafnian

import "fmt"

// IntMatrix is a dense, square matrix of 64-bit signed integers stored in
// row-major order. It is the element type used by HafnianInt; gonum's mat
// package has no integer matrix type, so IntMatrix follows the same
// row-major, contiguous-storage convention as mat.Dense.
type IntMatrix struct {
	n    int
	data []int64
}

// NewIntMatrix returns a new n×n IntMatrix. If data is non-nil it is used
// as the backing store and must have length n*n; otherwise a zeroed slice
// is allocated. NewIntMatrix panics if n is negative or data has the wrong
// length.
func NewIntMatrix(n int, data []int64) *IntMatrix {
	if n < 0 {
		panic("hafnian: negative matrix order")
	}
	if data == nil {
		data = make([]int64, n*n)
	}
	if len(data) != n*n {
		panic(fmt.Sprintf("hafnian: data has length %d, want %d", len(data), n*n))
	}
	return &IntMatrix{n: n, data: data}
}

// Dims returns the order of the matrix.
func (m *IntMatrix) Dims() int { return m.n }

// At returns the value at row i, column j.
func (m *IntMatrix) At(i, j int) int64 {
	return m.data[i*m.n+j]
}

// Set sets the value at row i, column j.
func (m *IntMatrix) Set(i, j int, v int64) {
	m.data[i*m.n+j] = v
}
