// SPDX-License-Identifier: MIT

package gf2

import (
	"fmt"

	"github.com/katalvlaran/gf2press/bitmatrix"
)

// Solution is one minimum-weight assignment found by MinWeight.
type Solution struct {
	X        *bitmatrix.Vector // one bit per button; 1 ⇒ press once
	Weight   int               // Hamming weight of X (number of presses)
	Rank     int               // rank of the system
	FreeVars int               // k = m − Rank
}

// Particular returns the solution with every free variable set to 0.
// Returns ErrInconsistent when the system has no solution.
func (e *Echelon) Particular() (*bitmatrix.Vector, error) {
	return e.Assign(0)
}

// Assign builds the full solution for one free-variable assignment.
//
// Implementation:
//   - Stage 1: free variable FreeVars()[i] takes bit i of mask.
//   - Stage 2: pivot rows are back-substituted in REVERSE order, from row
//     Rank-1 down to row 0: x[p] = B[r] XOR parity(A[r] AND x). At that
//     moment x holds the free variables and the pivots of later rows, and
//     x[p] itself is still 0, so the parity covers exactly the columns
//     after p that are already set.
//
// Errors:
//   - ErrInconsistent when the system has no solution.
//   - ErrMaskOutOfRange when mask has bits at or above 2^FreeCount().
//
// Complexity:
//   - Time O(Rank·m/64), Space O(m/64).
func (e *Echelon) Assign(mask uint64) (*bitmatrix.Vector, error) {
	if !e.Consistent {
		return nil, gf2Errorf(opAssign, ErrInconsistent)
	}
	k := len(e.free)
	if k < 64 && mask>>uint(k) != 0 {
		return nil, gf2Errorf(opAssign, fmt.Errorf("mask %#x for %d free vars: %w", mask, k, ErrMaskOutOfRange))
	}
	x, err := bitmatrix.NewVector(e.Vars())
	if err != nil {
		return nil, gf2Errorf(opAssign, err)
	}
	if err = e.assignInto(x, mask); err != nil {
		return nil, gf2Errorf(opAssign, err)
	}

	return x, nil
}

// assignInto overwrites x with the solution for mask (x.Len() == Vars()).
func (e *Echelon) assignInto(x *bitmatrix.Vector, mask uint64) error {
	x.Reset()
	for i, fv := range e.free {
		if mask>>uint(i)&1 == 1 {
			if err := x.Set(fv, true); err != nil {
				return err
			}
		}
	}

	var (
		r, p    int
		dot, br bool
		err     error
	)
	for r = e.Rank - 1; r >= 0; r-- { // reverse order is part of the contract
		p = e.PivotCol[r]
		if dot, err = e.A.RowDot(r, x); err != nil {
			return err
		}
		if br, err = e.B.At(r); err != nil {
			return err
		}
		if err = x.Set(p, br != dot); err != nil {
			return err
		}
	}

	return nil
}

// checkSearchable validates the echelon can be enumerated under o.
func (e *Echelon) checkSearchable(tag string, o Options) error {
	if !e.Consistent {
		return gf2Errorf(tag, ErrInconsistent)
	}
	if k := len(e.free); k > o.maxFreeVars || k > MaxFreeVarsLimit {
		return gf2Errorf(tag, fmt.Errorf("%d free vars, cap %d: %w", k, o.maxFreeVars, ErrSearchTooLarge))
	}

	return nil
}

// Enumerate streams every solution of the system, one per free-variable
// mask in ascending order (mask 0 first, i.e. the particular solution).
// fn receives a vector that is reused between calls; Clone it to keep it.
// Returning false from fn stops the enumeration early.
//
// Errors:
//   - ErrNilSystem, ErrInconsistent, ErrSearchTooLarge (k above the cap).
//
// Complexity:
//   - Time O(2^k · Rank·m/64), Space O(m/64).
func Enumerate(e *Echelon, fn func(x *bitmatrix.Vector) bool, opts ...Option) error {
	if e == nil {
		return gf2Errorf(opEnumerate, ErrNilSystem)
	}
	o := gatherOptions(opts...)
	if err := e.checkSearchable(opEnumerate, o); err != nil {
		return err
	}
	x, err := bitmatrix.NewVector(e.Vars())
	if err != nil {
		return gf2Errorf(opEnumerate, err)
	}

	total := uint64(1) << uint(len(e.free))
	for mask := uint64(0); mask < total; mask++ {
		if err = e.assignInto(x, mask); err != nil {
			return gf2Errorf(opEnumerate, err)
		}
		if !fn(x) {
			return nil
		}
	}

	return nil
}

// MinWeight returns a solution of minimum Hamming weight.
//
// Implementation:
//   - Stage 1: reject inconsistent systems (search skipped) and free-variable
//     counts above the cap.
//   - Stage 2: iterate mask = 0..2^k-1, back-substitute into one reused
//     vector, keep the lightest; ties keep the lowest mask. A weight-0
//     candidate ends the search immediately.
//
// Behavior highlights:
//   - Streaming: only the current best is retained, never the full set.
//   - Deterministic: identical inputs give the identical X.
//
// Errors:
//   - ErrNilSystem, ErrInconsistent, ErrSearchTooLarge.
//
// Complexity:
//   - Time O(2^k · Rank·m/64), Space O(m/64).
func MinWeight(e *Echelon, opts ...Option) (Solution, error) {
	if e == nil {
		return Solution{}, gf2Errorf(opMinWeight, ErrNilSystem)
	}
	o := gatherOptions(opts...)
	if err := e.checkSearchable(opMinWeight, o); err != nil {
		return Solution{}, err
	}

	x, err := bitmatrix.NewVector(e.Vars())
	if err != nil {
		return Solution{}, gf2Errorf(opMinWeight, err)
	}
	var (
		best       *bitmatrix.Vector
		bestWeight int
		w          int
	)
	total := uint64(1) << uint(len(e.free))
	for mask := uint64(0); mask < total; mask++ {
		if err = e.assignInto(x, mask); err != nil {
			return Solution{}, gf2Errorf(opMinWeight, err)
		}
		w = x.OnesCount()
		if best == nil || w < bestWeight {
			best, bestWeight = x.Clone(), w
			if w == 0 {
				break // nothing beats pressing nothing
			}
		}
	}

	return Solution{X: best, Weight: bestWeight, Rank: e.Rank, FreeVars: len(e.free)}, nil
}

// Solve runs Eliminate followed by MinWeight.
// An infeasible system surfaces as ErrInconsistent.
func Solve(s *System, opts ...Option) (Solution, error) {
	e, err := Eliminate(s)
	if err != nil {
		return Solution{}, err
	}

	return MinWeight(e, opts...)
}
