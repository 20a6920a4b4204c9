// Copyright ©2024 The Hafnian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eigen

import (
	"math"
	"math/cmplx"
)

// epsilon bounds the relative size a subdiagonal entry must fall below,
// relative to its neighbouring diagonal entries, before it is treated as
// converged during the shifted QR iteration.
const epsilon = 1e-13

// maxIterPerEigenvalue, multiplied by the matrix order n, bounds the total
// number of QR sweeps (across all eigenvalues) before the algorithm
// reports non-convergence.
const maxIterPerEigenvalue = 60

// Complex returns the complex eigenvalues of the n×n complex matrix stored
// in row-major order in data. On n=0 it returns an empty, non-nil slice
// without doing any work, per the eigensolver adapter's n=0 contract.
//
// gonum's LAPACK binding does not expose a general complex eigensolver
// (zgeev), so Complex implements the classical two-stage algorithm directly:
// Householder reduction to upper Hessenberg form, followed by the shifted
// QR algorithm with single complex (Rayleigh quotient) shifts, deflating
// one eigenvalue at a time from the bottom-right corner. Unlike the real
// case, a genuinely complex matrix never produces a 2×2 real conjugate-pair
// block: every eigenvalue deflates singly.
//
// Complex reports ok=false if the QR iteration has not deflated every
// eigenvalue within a total budget of maxIterPerEigenvalue*n sweeps.
func Complex(n int, data []complex128) (values []complex128, ok bool) {
	if n == 0 {
		return []complex128{}, true
	}
	h := make([]complex128, len(data))
	copy(h, data)

	hessenberg(h, n)
	return qrEigenvalues(h, n)
}

// hessenberg reduces the n×n matrix h (row-major, stride n) to upper
// Hessenberg form in place via a similarity transformation built from
// complex Householder reflectors, one per column.
func hessenberg(h []complex128, n int) {
	for k := 0; k < n-2; k++ {
		m := n - k - 1
		x := make([]complex128, m)
		for i := 0; i < m; i++ {
			x[i] = h[(k+1+i)*n+k]
		}
		v, tau, alpha, ok := householderVector(x)
		if !ok {
			continue
		}

		// Apply P = I - tau*v*v^H from the left to rows k+1..n-1,
		// columns k..n-1.
		for j := k; j < n; j++ {
			var t complex128
			for i := 0; i < m; i++ {
				t += cmplx.Conj(v[i]) * h[(k+1+i)*n+j]
			}
			t *= complex(tau, 0)
			for i := 0; i < m; i++ {
				h[(k+1+i)*n+j] -= v[i] * t
			}
		}

		// Apply P from the right to rows 0..n-1, columns k+1..n-1, to
		// complete the similarity transform.
		for i := 0; i < n; i++ {
			var t complex128
			for jj := 0; jj < m; jj++ {
				t += h[i*n+(k+1+jj)] * v[jj]
			}
			t *= complex(tau, 0)
			for jj := 0; jj < m; jj++ {
				h[i*n+(k+1+jj)] -= t * cmplx.Conj(v[jj])
			}
		}

		h[(k+1)*n+k] = alpha
		for i := 1; i < m; i++ {
			h[(k+1+i)*n+k] = 0
		}
	}
}

// householderVector computes the Householder reflector that zeroes every
// entry of x below the first. It returns the (unnormalized) reflector
// vector v, the scalar tau such that P = I - tau*v*v^H, and the value
// alpha the first entry of x is mapped to. ok is false when x is already
// zero below its first entry, in which case no reflection is needed.
func householderVector(x []complex128) (v []complex128, tau float64, alpha complex128, ok bool) {
	m := len(x)
	var normSq float64
	for _, xi := range x {
		normSq += real(xi)*real(xi) + imag(xi)*imag(xi)
	}
	if normSq == 0 {
		return nil, 0, 0, false
	}
	normx := math.Sqrt(normSq)

	var phase complex128
	if x[0] != 0 {
		phase = x[0] / complex(cmplx.Abs(x[0]), 0)
	} else {
		phase = 1
	}
	alpha = -phase * complex(normx, 0)

	v = make([]complex128, m)
	copy(v, x)
	v[0] -= alpha

	var vNormSq float64
	for _, vi := range v {
		vNormSq += real(vi)*real(vi) + imag(vi)*imag(vi)
	}
	if vNormSq == 0 {
		return nil, 0, 0, false
	}
	tau = 2 / vNormSq
	return v, tau, alpha, true
}

// qrEigenvalues runs the shifted QR algorithm on the upper Hessenberg
// matrix h (row-major, stride n), deflating one eigenvalue at a time from
// the bottom-right corner.
func qrEigenvalues(h []complex128, n int) ([]complex128, bool) {
	values := make([]complex128, n)
	m := n
	sinceDeflate := 0
	totalIter := 0
	maxTotal := maxIterPerEigenvalue * n

	cs := make([]float64, n)
	ss := make([]complex128, n)

	for m > 1 {
		sub := h[(m-1)*n+(m-2)]
		tol := epsilon * (cmplx.Abs(h[(m-2)*n+(m-2)]) + cmplx.Abs(h[(m-1)*n+(m-1)]))
		if tol == 0 {
			tol = epsilon
		}
		if cmplx.Abs(sub) <= tol {
			values[m-1] = h[(m-1)*n+(m-1)]
			h[(m-1)*n+(m-2)] = 0
			m--
			sinceDeflate = 0
			continue
		}

		totalIter++
		sinceDeflate++
		if totalIter > maxTotal {
			return nil, false
		}

		shift := h[(m-1)*n+(m-1)]
		if sinceDeflate%20 == 0 {
			// Exceptional shift: nudge away from stagnation, mirroring
			// the ad hoc shift adjustments of the classical real QR
			// algorithm (EISPACK's hqr2 at iter==10/30).
			shift += complex(cmplx.Abs(h[(m-1)*n+(m-2)]), 0)
		}

		for i := 0; i < m; i++ {
			h[i*n+i] -= shift
		}

		// Left sweep: zero each subdiagonal entry with a Givens rotation,
		// recording the rotations to replay on the right afterwards.
		for i := 0; i < m-1; i++ {
			a := h[i*n+i]
			b := h[(i+1)*n+i]
			c, s, r := givens(a, b)
			cs[i], ss[i] = c, s
			h[i*n+i] = r
			h[(i+1)*n+i] = 0
			for j := i + 1; j < m; j++ {
				aj := h[i*n+j]
				bj := h[(i+1)*n+j]
				h[i*n+j] = complex(c, 0)*aj + s*bj
				h[(i+1)*n+j] = -cmplx.Conj(s)*aj + complex(c, 0)*bj
			}
		}

		// Right sweep (RQ): replay the same rotations, in the same
		// order, against the columns.
		for i := 0; i < m-1; i++ {
			c, s := cs[i], ss[i]
			for k := 0; k < m; k++ {
				a := h[k*n+i]
				b := h[k*n+i+1]
				h[k*n+i] = complex(c, 0)*a + cmplx.Conj(s)*b
				h[k*n+i+1] = -s*a + complex(c, 0)*b
			}
		}

		for i := 0; i < m; i++ {
			h[i*n+i] += shift
		}
	}
	if m == 1 {
		values[0] = h[0]
	}
	return values, true
}

// givens computes a complex Givens rotation (c real, s complex) and the
// resulting value r such that
//
//	c*f + s*g = r
//	-conj(s)*f + c*g = 0
//	c^2 + |s|^2 = 1
func givens(f, g complex128) (c float64, s complex128, r complex128) {
	if g == 0 {
		return 1, 0, f
	}
	if f == 0 {
		ag := cmplx.Abs(g)
		return 0, cmplx.Conj(g) / complex(ag, 0), complex(ag, 0)
	}
	af := cmplx.Abs(f)
	ag := cmplx.Abs(g)
	norm := math.Hypot(af, ag)
	c = af / norm
	s = complex(c, 0) * cmplx.Conj(g) / cmplx.Conj(f)
	r = complex(c, 0)*f + s*g
	return c, s, r
}
