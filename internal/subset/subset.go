// Copyright ©2024 The Hafnian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package subset implements the subset enumerator / chunk worker: for each
// subset x of the m index-pair classes of a 2m×2m matrix, it forms the
// reduced matrix B(x), obtains its power traces, and folds them into the
// generating-function accumulator that yields the subset's signed
// contribution to the hafnian. The per-subset contributions are summed
// under a bounded, fork-join worker pool.
package subset

import "fmt"

// ConvergenceError reports that the eigensolver backend failed to
// converge while processing the reduced matrix for subset x. It is
// returned by the Sum* entry points and is meant to be translated by the
// caller into a public, package-level error type.
type ConvergenceError struct {
	Size int
	X    uint64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("subset: eigensolver failed to converge for subset x=%d (reduced matrix order %d)", e.X, e.Size)
}

// sibling returns the index paired with i within its index-pair class.
func sibling(i int) int {
	return i ^ 1
}

// positions returns pos(x): the row indices selected by the set bits of
// x, each contributing its sibling pair {2i, 2i+1} in increasing order.
func positions(x uint64, m int) []int {
	pos := make([]int, 0, 2*m)
	for i := 0; i < m; i++ {
		if x&(1<<uint(i)) != 0 {
			pos = append(pos, 2*i, 2*i+1)
		}
	}
	return pos
}

// sign returns the sign of the subset summand given k = |S(x)| pairs
// selected (order/2, i.e. popcount(x)) and the truncation degree m, per
// spec.md §3's final sign rule.
func sign(k, m int) float64 {
	if k%2 == (m % 2) {
		return 1
	}
	return -1
}

// fold accumulates, into a length-(m+1) ping-pong pair of buffers, the
// coefficients of the truncated power series Π_{i=1}^{m} exp(factorAt(i)
// * z^i), and returns the coefficient of z^m. factorAt(i) is called
// exactly once per i, in increasing order, and may carry its own
// internal state forward between calls (as the loop-mode callers do).
func fold(m int, factorAt func(i int) complex128) complex128 {
	cur := make([]complex128, m+1)
	other := make([]complex128, m+1)
	cur[0] = 1

	for i := 1; i <= m; i++ {
		factor := factorAt(i)
		copy(other, cur)

		powfactor := complex128(1)
		maxJ := m / i
		for j := 1; j <= maxJ; j++ {
			powfactor *= factor / complex(float64(j), 0)
			for kp := i*j + 1; kp <= m+1; kp++ {
				other[kp-1] += cur[kp-i*j-1] * powfactor
			}
		}
		cur, other = other, cur
	}
	return cur[m]
}
