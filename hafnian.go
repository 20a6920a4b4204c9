// Copyright ©2024 The Hafnian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hafnian

import (
	"gonum.org/v1/gonum/mat"

	"github.com/XanaduAI/hafnian/internal/subset"
)

// evenOrder validates that an r×c matrix is square with an even order
// (zero counts as even: the 0×0 matrix has exactly one perfect matching,
// the empty one), and returns half that order (m, the number of
// index-pair classes the subset expansion iterates over).
func evenOrder(r, c int) (m int, err error) {
	if r != c || r < 0 || r%2 != 0 {
		return 0, ErrEvenDimensionRequired
	}
	return r / 2, nil
}

// asEigensolverFailure translates an internal/subset convergence error
// into the package's public EigensolverFailure, leaving any other error
// (there currently are none) unchanged.
func asEigensolverFailure(err error) error {
	if err == nil {
		return nil
	}
	if ce, ok := err.(*subset.ConvergenceError); ok {
		return &EigensolverFailure{Size: ce.Size, X: ce.X}
	}
	return err
}

// Hafnian returns the hafnian of the real, symmetric matrix a.
//
// Hafnian does not validate that a is symmetric: the subset expansion only
// ever reads entries A[i][sibling(j)], so an asymmetric input silently
// yields the hafnian of (A+Aᵀ)/2's pattern of reads rather than a
// meaningful result for A itself. Callers are responsible for passing a
// symmetric matrix.
func Hafnian(a *mat.Dense) (float64, error) {
	r, c := a.Dims()
	m, err := evenOrder(r, c)
	if err != nil {
		return 0, err
	}
	v, err := subset.SumReal(a, m)
	return v, asEigensolverFailure(err)
}

// HafnianComplex returns the hafnian of the complex, symmetric (not
// Hermitian) matrix a.
func HafnianComplex(a *mat.CDense) (complex128, error) {
	r, c := a.Dims()
	m, err := evenOrder(r, c)
	if err != nil {
		return 0, err
	}
	v, err := subset.SumComplex(a, m)
	return v, asEigensolverFailure(err)
}
