// Copyright ©2024 The Hafnian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hafnian computes the hafnian, loop hafnian, and exact integer
// hafnian of dense, even-order square matrices.
//
// The hafnian of a 2m×2m symmetric matrix A is the sum, over every perfect
// matching of the complete graph on 2m vertices, of the product of the
// matrix entries selected by the matching's edges:
//
//	haf(A) = Σ_{M ∈ PMP(2m)} Π_{(i,j) ∈ M} A[i][j]
//
// Hafnian and HafnianComplex evaluate this sum via the Cygan-Pilipczuk
// power-sum algorithm: they expand the matching sum over subsets of m
// index-pair classes, reduce each subset to a smaller matrix, recover its
// power traces from its eigenvalues, and fold those traces into the
// subset's contribution via a generating-function recurrence. This runs in
// time polynomial in m per subset and O(2^m) subsets overall, trading an
// exponential-but-practical runtime for a dense-linear-algebra
// implementation with no per-matching combinatorial enumeration.
//
// LoopHafnian and LoopHafnianComplex compute the loop hafnian, which
// additionally counts matchings that use one or more "loops" — an edge
// from a vertex to itself, weighted by the matrix's diagonal entry.
//
// HafnianInt computes the hafnian of an integer matrix exactly, using a
// recursive vertex-elimination algorithm (package internal/recint) that
// tracks exact integer polynomials instead of floating-point eigenvalues,
// avoiding the rounding error the eigenvalue-based algorithms accumulate
// for ill-conditioned or large inputs.
//
// All three families require the input matrix to be square with an even
// order (the 0×0 matrix is accepted and has hafnian 1);
// ErrEvenDimensionRequired is returned otherwise.
package hafnian
