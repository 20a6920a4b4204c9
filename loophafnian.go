// Copyright ©2024 The Hafnian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hafnian

import (
	"gonum.org/v1/gonum/mat"

	"github.com/XanaduAI/hafnian/internal/subset"
)

// LoopHafnian returns the loop hafnian of the real, symmetric matrix a:
// the hafnian extended to also count matchings that pair a vertex with
// itself via a's diagonal entry. When a's diagonal is all zero,
// LoopHafnian(a) == Hafnian(a).
func LoopHafnian(a *mat.Dense) (float64, error) {
	r, c := a.Dims()
	m, err := evenOrder(r, c)
	if err != nil {
		return 0, err
	}
	diag := make([]float64, r)
	for i := range diag {
		diag[i] = a.At(i, i)
	}
	v, err := subset.SumLoopReal(a, diag, m)
	return v, asEigensolverFailure(err)
}

// LoopHafnianComplex is the complex-matrix counterpart of LoopHafnian.
func LoopHafnianComplex(a *mat.CDense) (complex128, error) {
	r, c := a.Dims()
	m, err := evenOrder(r, c)
	if err != nil {
		return 0, err
	}
	diag := make([]complex128, r)
	for i := range diag {
		diag[i] = a.At(i, i)
	}
	v, err := subset.SumLoopComplex(a, diag, m)
	return v, asEigensolverFailure(err)
}
