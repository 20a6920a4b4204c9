// Copyright ©2024 The Hafnian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hafnian

import (
	"errors"
	"fmt"
)

// ErrEvenDimensionRequired signifies that a matrix passed to one of the
// core operations has an odd order, or is not square.
var ErrEvenDimensionRequired = errors.New("hafnian: matrix must be square with an even order")

// EigensolverFailure signifies that the dense eigenvalue backend failed to
// converge while processing one of the reduced matrices B(x) generated
// during the subset expansion. It is fatal for the subset that produced it,
// but the driver that receives it may have already computed (and discarded)
// contributions from other, unrelated subsets.
type EigensolverFailure struct {
	// Size is the order of the reduced matrix that failed to converge.
	Size int
	// X is the subset index whose reduced matrix failed.
	X uint64
}

func (e *EigensolverFailure) Error() string {
	return fmt.Sprintf("hafnian: eigensolver failed to converge for subset x=%d (reduced matrix order %d)", e.X, e.Size)
}
