// Copyright ©2024 The Hafnian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eigen provides the eigensolver adapter used by the hafnian's
// subset worker: given a dense square matrix, it returns the matrix's
// complex eigenvalues with no associated eigenvectors.
package eigen

import (
	"gonum.org/v1/gonum/mat"
)

// Real returns the complex eigenvalues of the real square matrix a. On
// n=0 it returns an empty, non-nil slice without invoking the backend,
// per the eigensolver adapter's n=0 contract.
//
// Real wraps gonum's general (non-symmetric) eigenvalue decomposition,
// mat.Eigen, which is itself a thin binding over LAPACK's Geev routine.
// Real reports ok=false if the backend failed to converge; the caller
// is responsible for turning that into a fatal, subset-scoped error.
func Real(a *mat.Dense) (values []complex128, ok bool) {
	n, _ := a.Dims()
	if n == 0 {
		return []complex128{}, true
	}

	var e mat.Eigen
	if !e.Factorize(a, false, false) {
		return nil, false
	}
	return e.Values(nil), true
}
