// Copyright ©2024 The Hafnian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package recint implements the recursive integer engine: an exact
// integer hafnian algorithm that eliminates two vertices per recursion
// level, tracking the state of the remaining problem as a collection of
// integer polynomials (generating functions in the number of matched
// edges, truncated at the perfect-matching degree) rather than via
// eigenvalue arithmetic. It trades numerical error for exponential
// memory in those polynomial arrays.
package recint

import (
	"runtime"
	"sync"
)

// poly is a coefficient vector of a polynomial of degree <= deg, stored
// as poly[i] = coefficient of z^i, for i = 0..deg.
type poly = []int64

// pairKey identifies an unordered pair of row indices, hi > lo. The
// source's packed triangular index b[(j+1)(j+2)/2+k] is reimplemented
// here as a map keyed by pairKey, per spec.md §9's suggested
// simplification.
type pairKey struct{ hi, lo int }

func key(a, b int) pairKey {
	if a < b {
		a, b = b, a
	}
	return pairKey{hi: a, lo: b}
}

// edges holds, for every remaining pair of vertices, the edge polynomial
// between them: b in spec.md §3/§4.6.
type edges map[pairKey]poly

// parallelDegreeThreshold is the degree above which the inner
// convolution loop (spec.md §4.6 step 4, §5) is split across a worker
// pool; below it the per-task overhead of spawning goroutines would
// dominate the (already small) polynomial update.
const parallelDegreeThreshold = 64

// Hafnian computes the exact hafnian of the n×n (n even) integer matrix
// given as row-major data, via the recursive doubling procedure of
// spec.md §4.6. Overflow of the 64-bit accumulators is not detected; the
// caller is responsible for bounding the matrix so that no summand
// exceeds the range of int64 (spec.md §7).
func Hafnian(n int, data []int64) int64 {
	if n == 0 {
		return 1
	}
	deg := n / 2

	b := make(edges, n*(n-1)/2)
	for j := 1; j < n; j++ {
		for k := 0; k < j; k++ {
			p := make(poly, deg+1)
			p[0] = data[j*n+k]
			b[key(j, k)] = p
		}
	}

	g := make(poly, deg+1)
	g[0] = 1

	return recursive(b, n, 1, g, deg)
}

// recursive implements spec.md §4.6: it eliminates the two
// highest-indexed vertices of the current s-vertex problem as one
// inclusion-exclusion step, summing a branch that drops them with the
// sign flipped (reduce: h) and a branch that keeps the sign and folds
// their edges into the polynomials of the rest (augment: e and c).
func recursive(b edges, s int, w int64, g poly, deg int) int64 {
	if s == 0 {
		return w * g[deg]
	}
	p, q := s-1, s-2

	// Reduce: drop vertices p, q and their incident edges entirely.
	c := make(edges, len(b))
	for kk, pl := range b {
		if kk.hi < s-2 && kk.lo < s-2 {
			c[kk] = clonePoly(pl)
		}
	}
	h := recursive(c, s-2, -w, g, deg)

	// Augment g with the edge between the two dropped vertices.
	e := clonePoly(g)
	convolveAddShift(e, g, b[key(p, q)], deg)

	// Augment c: each surviving pair (j,k) may now also be connected
	// via p or via q.
	for j := 1; j < s-2; j++ {
		for k := 0; k < j; k++ {
			kk := key(j, k)
			cp := c[kk]
			if cp == nil {
				cp = make(poly, deg+1)
				c[kk] = cp
			}
			convolveAddShift(cp, b[key(p, j)], b[key(q, k)], deg)
			convolveAddShift(cp, b[key(p, k)], b[key(q, j)], deg)
		}
	}

	return h + recursive(c, s-2, w, e, deg)
}

// convolveAddShift adds, into dst, the degree-shifted convolution of x
// and y: dst[u+v+1] += x[u]*y[v] for all u, v >= 0 with u+v < deg.
func convolveAddShift(dst, x, y poly, deg int) {
	if deg < parallelDegreeThreshold {
		convolveAddShiftRange(dst, x, y, 0, deg, deg)
		return
	}

	nw := runtime.GOMAXPROCS(0)
	if nw > deg {
		nw = deg
	}
	if nw < 1 {
		nw = 1
	}
	chunk := (deg + nw - 1) / nw

	var mu sync.Mutex
	var wg sync.WaitGroup
	for w := 0; w < nw; w++ {
		start := w * chunk
		if start >= deg {
			break
		}
		end := start + chunk
		if end > deg {
			end = deg
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			local := make(poly, len(dst))
			convolveAddShiftRange(local, x, y, start, end, deg)
			mu.Lock()
			for i, v := range local {
				dst[i] += v
			}
			mu.Unlock()
		}(start, end)
	}
	wg.Wait()
}

// convolveAddShiftRange performs convolveAddShift restricted to
// u in [uStart, uEnd).
func convolveAddShiftRange(dst, x, y poly, uStart, uEnd, deg int) {
	for u := uStart; u < uEnd; u++ {
		xu := x[u]
		if xu == 0 {
			continue
		}
		for v := 0; u+v < deg; v++ {
			yv := y[v]
			if yv == 0 {
				continue
			}
			dst[u+v+1] += xu * yv
		}
	}
}

func clonePoly(p poly) poly {
	out := make(poly, len(p))
	copy(out, p)
	return out
}
