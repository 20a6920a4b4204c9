// Copyright ©2024 The Hafnian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subset

import (
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/XanaduAI/hafnian/internal/eigen"
	"github.com/XanaduAI/hafnian/internal/trace"
)

// RealSource supplies the entries of a real, symmetric 2m×2m matrix.
type RealSource interface {
	At(i, j int) float64
}

// SumReal computes Σ_x sign(x)·comb(x)[m] over every subset x in
// [0, 2^m), dispatching the subset loop across a bounded worker pool.
func SumReal(src RealSource, m int) (float64, error) {
	return dispatch(m, func(x uint64) (float64, error) {
		return summandReal(src, x, m)
	})
}

// SumLoopReal is the loop-hafnian variant of SumReal: diag holds the
// diagonal of the original matrix (D in spec.md §3); the sibling-swapped
// vector C is derived from D internally.
func SumLoopReal(src RealSource, diag []float64, m int) (float64, error) {
	return dispatch(m, func(x uint64) (float64, error) {
		return summandLoopReal(src, diag, x, m)
	})
}

// buildReducedReal forms the order×order reduced matrix B(x) (spec.md §3)
// from the positions selected by a subset, in row-major order.
func buildReducedReal(src RealSource, pos []int) []float64 {
	order := len(pos)
	data := make([]float64, order*order)
	for i, pi := range pos {
		for j, pj := range pos {
			data[i*order+j] = src.At(pi, sibling(pj))
		}
	}
	return data
}

// eigenvaluesReal returns the eigenvalues of the reduced matrix built from
// data. order==0 (the empty subset) is handled without ever constructing a
// mat.Dense: mat.NewDense panics on a zero dimension, and the trace of an
// order-0 matrix is the empty sequence regardless, so the eigensolver call
// would be a no-op even if it could be made.
func eigenvaluesReal(data []float64, order int) (lambda []complex128, ok bool) {
	if order == 0 {
		return nil, true
	}
	return eigen.Real(mat.NewDense(order, order, data))
}

func summandReal(src RealSource, x uint64, m int) (float64, error) {
	pos := positions(x, m)
	order := len(pos)
	k := order / 2

	data := buildReducedReal(src, pos)
	lambda, ok := eigenvaluesReal(data, order)
	if !ok {
		return 0, &ConvergenceError{Size: order, X: x}
	}
	tau := trace.Powers(lambda, m)

	val := fold(m, func(i int) complex128 {
		return tau[i-1] / complex(float64(2*i), 0)
	})
	return sign(k, m) * real(val), nil
}

func summandLoopReal(src RealSource, diag []float64, x uint64, m int) (float64, error) {
	pos := positions(x, m)
	order := len(pos)
	k := order / 2

	data := buildReducedReal(src, pos)
	lambda, ok := eigenvaluesReal(data, order)
	if !ok {
		return 0, &ConvergenceError{Size: order, X: x}
	}
	tau := trace.Powers(lambda, m)

	c1 := make([]float64, order)
	d1 := make([]float64, order)
	for t, p := range pos {
		d1[t] = diag[p]
		c1[t] = diag[sibling(p)]
	}

	val := fold(m, func(i int) complex128 {
		var dot float64
		for t := range c1 {
			dot += c1[t] * d1[t]
		}
		factor := tau[i-1]/complex(float64(2*i), 0) + complex(0.5*dot, 0)

		next := make([]float64, order)
		for j := 0; j < order; j++ {
			var s float64
			for t := 0; t < order; t++ {
				s += c1[t] * data[t*order+j]
			}
			next[j] = s
		}
		c1 = next
		return factor
	})
	return sign(k, m) * real(val), nil
}

// dispatch runs compute(x) for every x in [0, 2^m) across a worker pool
// sized from GOMAXPROCS, each worker accumulating a local partial sum
// that is merged into the final result at join, per spec.md §5's
// preferred reduction strategy. An error stops the remaining work of the
// worker that observed it but does not cancel the other workers, which run
// their chunks to completion; the first error is returned after all
// workers finish (spec.md §5 "Cancellation & timeouts").
func dispatch(m int, compute func(x uint64) (float64, error)) (float64, error) {
	total := uint64(1) << uint(m)

	nw := runtime.GOMAXPROCS(0)
	if uint64(nw) > total {
		nw = int(total)
	}
	if nw < 1 {
		nw = 1
	}
	chunk := (total + uint64(nw) - 1) / uint64(nw)

	// Partial sums are written to a slot fixed by worker index rather than
	// merged under a mutex in completion order, so that the final sum is
	// independent of goroutine scheduling (spec.md §8's determinism
	// property): float64 addition is not associative, so summing the same
	// chunks in a different order can change the last bit of the result.
	partials := make([]float64, nw)

	g := new(errgroup.Group)
	g.SetLimit(nw)
	for w := 0; w < nw; w++ {
		start := uint64(w) * chunk
		if start >= total {
			break
		}
		end := start + chunk
		if end > total {
			end = total
		}
		w := w
		g.Go(func() error {
			var partial float64
			for x := start; x < end; x++ {
				v, err := compute(x)
				if err != nil {
					return err
				}
				partial += v
			}
			partials[w] = partial
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	var result float64
	for _, p := range partials {
		result += p
	}
	return result, nil
}
