// SPDX-License-Identifier: MIT

package gf2

import (
	"fmt"

	"github.com/katalvlaran/gf2press/bitmatrix"
)

// System is the linear system A·x = b over GF(2).
//   - A has one row per light and one column per button; A[i][j] = 1 iff
//     button j toggles light i.
//   - B is the target pattern, one bit per light.
//
// A System is never mutated by this package; Eliminate works on copies.
type System struct {
	A *bitmatrix.Matrix
	B *bitmatrix.Vector
}

// NewSystem builds the coefficient matrix and target vector for one machine.
//
// Implementation:
//   - Stage 1: validate lights >= 0 and len(target) == lights.
//   - Stage 2: validate every index of every button lies in [0, lights).
//   - Stage 3: allocate A (lights × len(buttons)) and set A[i][j] for each
//     index i listed by button j.
//
// Behavior highlights:
//   - A light listed twice by the same button is still a single 1 (a button
//     is a set of lights).
//   - Duplicate buttons are legal; they are just linearly dependent columns.
//   - Validation completes before any allocation; on error nothing is returned.
//
// Errors:
//   - ErrNegativeLights, ErrTargetLength, ErrLightOutOfRange (wrapped with
//     the button and light index).
//
// Complexity:
//   - Time O(lights·m/64 + Σ|button|), Space O(lights·m/64).
func NewSystem(lights int, buttons [][]int, target []bool) (*System, error) {
	if lights < 0 {
		return nil, gf2Errorf(opNewSystem, ErrNegativeLights)
	}
	if len(target) != lights {
		return nil, gf2Errorf(opNewSystem,
			fmt.Errorf("got %d bits for %d lights: %w", len(target), lights, ErrTargetLength))
	}
	for j, btn := range buttons {
		for _, i := range btn {
			if i < 0 || i >= lights {
				return nil, gf2Errorf(opNewSystem,
					fmt.Errorf("button %d light %d: %w", j, i, ErrLightOutOfRange))
			}
		}
	}

	a, err := bitmatrix.NewMatrix(lights, len(buttons))
	if err != nil {
		return nil, gf2Errorf(opNewSystem, err)
	}
	for j, btn := range buttons {
		for _, i := range btn {
			if err = a.Set(i, j, true); err != nil {
				return nil, gf2Errorf(opNewSystem, err)
			}
		}
	}

	return &System{A: a, B: bitmatrix.VectorFromBits(target)}, nil
}

// FromMatrix wraps an existing coefficient matrix and target into a System.
// Both are cloned, so later changes by the caller do not leak in.
// Returns ErrNilSystem for nil inputs and ErrTargetLength when b.Len() != a.Rows().
func FromMatrix(a *bitmatrix.Matrix, b *bitmatrix.Vector) (*System, error) {
	if err := bitmatrix.ValidateNotNil(a); err != nil {
		return nil, gf2Errorf(opFromMatrix, ErrNilSystem)
	}
	if b == nil {
		return nil, gf2Errorf(opFromMatrix, ErrNilSystem)
	}
	if b.Len() != a.Rows() {
		return nil, gf2Errorf(opFromMatrix, ErrTargetLength)
	}

	return &System{A: a.Clone(), B: b.Clone()}, nil
}

// Lights returns the number of equations (rows of A).
func (s *System) Lights() int { return s.A.Rows() }

// Buttons returns the number of unknowns (columns of A).
func (s *System) Buttons() int { return s.A.Cols() }

// Verify reports whether x satisfies A·x = b exactly. It recomputes the
// product from the original matrix, independently of any elimination.
// Returns bitmatrix.ErrDimensionMismatch when x.Len() != Buttons().
func (s *System) Verify(x *bitmatrix.Vector) (bool, error) {
	if s == nil {
		return false, gf2Errorf(opVerify, ErrNilSystem)
	}
	y, err := s.A.MulVec(x)
	if err != nil {
		return false, gf2Errorf(opVerify, err)
	}

	return y.Equal(s.B), nil
}
