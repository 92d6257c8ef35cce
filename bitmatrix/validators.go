// SPDX-License-Identifier: MIT
// Package: bitmatrix
//
// Purpose:
//  - Single source of truth for nil/length guards used by kernels here and in gf2.
//  - Return sentinels wrapped with the validator tag so call sites can wrap again uniformly.

package bitmatrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVecLen ensures x is non-nil and has exactly n bits.
// Returns ErrNilVector or ErrDimensionMismatch.
// Complexity: O(1).
func ValidateVecLen(x *Vector, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilVector)
	}
	if x.n != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
