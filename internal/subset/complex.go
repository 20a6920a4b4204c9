// Copyright ©2024 The Hafnian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subset

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/XanaduAI/hafnian/internal/eigen"
	"github.com/XanaduAI/hafnian/internal/trace"
)

// ComplexSource supplies the entries of a complex, symmetric (not
// Hermitian) 2m×2m matrix.
type ComplexSource interface {
	At(i, j int) complex128
}

// SumComplex is the complex-matrix counterpart of SumReal.
func SumComplex(src ComplexSource, m int) (complex128, error) {
	return dispatchComplex(m, func(x uint64) (complex128, error) {
		return summandComplex(src, x, m)
	})
}

// SumLoopComplex is the complex-matrix counterpart of SumLoopReal.
func SumLoopComplex(src ComplexSource, diag []complex128, m int) (complex128, error) {
	return dispatchComplex(m, func(x uint64) (complex128, error) {
		return summandLoopComplex(src, diag, x, m)
	})
}

func buildReduced(src ComplexSource, pos []int) []complex128 {
	order := len(pos)
	data := make([]complex128, order*order)
	for i, pi := range pos {
		for j, pj := range pos {
			data[i*order+j] = src.At(pi, sibling(pj))
		}
	}
	return data
}

func summandComplex(src ComplexSource, x uint64, m int) (complex128, error) {
	pos := positions(x, m)
	order := len(pos)
	k := order / 2

	data := buildReduced(src, pos)
	lambda, ok := eigen.Complex(order, data)
	if !ok {
		return 0, &ConvergenceError{Size: order, X: x}
	}
	tau := trace.Powers(lambda, m)

	val := fold(m, func(i int) complex128 {
		return tau[i-1] / complex(float64(2*i), 0)
	})
	return complex(sign(k, m), 0) * val, nil
}

func summandLoopComplex(src ComplexSource, diag []complex128, x uint64, m int) (complex128, error) {
	pos := positions(x, m)
	order := len(pos)
	k := order / 2

	data := buildReduced(src, pos)
	lambda, ok := eigen.Complex(order, data)
	if !ok {
		return 0, &ConvergenceError{Size: order, X: x}
	}
	tau := trace.Powers(lambda, m)

	c1 := make([]complex128, order)
	d1 := make([]complex128, order)
	for t, p := range pos {
		d1[t] = diag[p]
		c1[t] = diag[sibling(p)]
	}

	val := fold(m, func(i int) complex128 {
		var dot complex128
		for t := range c1 {
			dot += c1[t] * d1[t]
		}
		factor := tau[i-1]/complex(float64(2*i), 0) + 0.5*dot

		next := make([]complex128, order)
		for j := 0; j < order; j++ {
			var s complex128
			for t := 0; t < order; t++ {
				s += c1[t] * data[t*order+j]
			}
			next[j] = s
		}
		c1 = next
		return factor
	})
	return complex(sign(k, m), 0) * val, nil
}

func dispatchComplex(m int, compute func(x uint64) (complex128, error)) (complex128, error) {
	total := uint64(1) << uint(m)

	nw := runtime.GOMAXPROCS(0)
	if uint64(nw) > total {
		nw = int(total)
	}
	if nw < 1 {
		nw = 1
	}
	chunk := (total + uint64(nw) - 1) / uint64(nw)

	// See the analogous comment in dispatch (real.go): partials are kept
	// in a fixed, worker-indexed slice and summed in order after g.Wait,
	// rather than merged under a mutex in completion order.
	partials := make([]complex128, nw)

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
			var partial complex128
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
	var result complex128
	for _, p := range partials {
		result += p
	}
	return result, nil
}
