// SPDX-License-Identifier: MIT
// Package bitmatrix: sentinel error set.
// Every public method returns one of these (possibly wrapped with the method
// name and coordinates via %w); tests match them with errors.Is.

package bitmatrix

import "errors"

var (
	// ErrInvalidDimensions is returned when a requested shape or length is negative.
	ErrInvalidDimensions = errors.New("bitmatrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row, column or bit index is outside valid bounds.
	ErrOutOfRange = errors.New("bitmatrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand sizes,
	// e.g. MulVec with len(x) != Cols() or Xor of vectors of different length.
	ErrDimensionMismatch = errors.New("bitmatrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix was used.
	ErrNilMatrix = errors.New("bitmatrix: nil matrix")

	// ErrNilVector indicates that a nil *Vector was used.
	ErrNilVector = errors.New("bitmatrix: nil vector")
)
