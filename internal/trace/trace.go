// Copyright ©2024 The Hafnian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trace implements the power-trace engine: given the eigenvalues
// of a matrix B, it computes tr(B^k) for k = 1…ℓ in O(ℓn) time after the
// eigendecomposition, without forming any matrix power explicitly.
package trace

// Powers returns τ where τ[k-1] = tr(B^k) = Σ_j lambda[j]^k, for
// k = 1…ell. Powers allocates a single result slice and a single scratch
// slice; it performs no further allocation in the loop.
func Powers(lambda []complex128, ell int) []complex128 {
	tau := make([]complex128, ell)
	if ell == 0 {
		return tau
	}

	pi := make([]complex128, len(lambda))
	copy(pi, lambda)

	for k := 0; k < ell; k++ {
		var sum complex128
		for j, p := range pi {
			sum += p
			pi[j] = p * lambda[j]
		}
		tau[k] = sum
	}
	return tau
}
