// SPDX-License-Identifier: MIT

package gf2

import (
	"github.com/katalvlaran/gf2press/bitmatrix"
)

// NoPivot marks a row of an Echelon that received no pivot column.
const NoPivot = -1

// Echelon is the reduced row echelon form of a System, produced by Eliminate.
//
// Invariants (for a value returned by Eliminate):
//   - Rows 0..Rank-1 carry pivots with strictly increasing PivotCol; rows
//     Rank..n-1 have PivotCol == NoPivot and are all-zero in A.
//   - Every pivot column holds exactly one 1 across ALL rows (full reduction),
//     so pivot variables depend on free variables only.
//   - Consistent is false iff some pivot-less row has B == 1.
type Echelon struct {
	A          *bitmatrix.Matrix // reduced copy of the system matrix
	B          *bitmatrix.Vector // target, transformed alongside A
	PivotCol   []int             // per row: pivot column or NoPivot
	Rank       int               // number of pivot rows
	Consistent bool              // false ⇒ no solution exists

	free []int // non-pivot columns, ascending
}

// Eliminate row-reduces s to reduced row echelon form over GF(2).
//
// Implementation:
//   - Stage 1: clone A and b so the caller's System stays untouched.
//   - Stage 2: sweep col = 0..m-1 with a row cursor starting at 0:
//     search rows cursor..n-1 for a 1 in col (downward only); if none, the
//     column is free. Otherwise swap that row to the cursor (b as well),
//     record col as the cursor row's pivot, and XOR the pivot row (from col
//     onward) plus its b bit into EVERY other row with a 1 in col, above
//     and below. Advance the cursor; stop when it reaches n.
//   - Stage 3: a pivot-less row with b = 1 reads 0 = 1, so Consistent=false.
//
// Behavior highlights:
//   - The downward-only pivot search combined with two-sided elimination
//     yields the fully reduced form, not merely a triangular one. IsReduced
//     checks this.
//   - Inconsistency is a flag, not an error.
//
// Errors:
//   - ErrNilSystem when s, s.A or s.B is nil, ErrTargetLength when the
//     target length differs from the row count.
//
// Complexity:
//   - Time O(n·m·m/64) word operations, Space O(n·m/64).
func Eliminate(s *System) (*Echelon, error) {
	if s == nil || s.A == nil || s.B == nil {
		return nil, gf2Errorf(opEliminate, ErrNilSystem)
	}
	if s.B.Len() != s.A.Rows() {
		return nil, gf2Errorf(opEliminate, ErrTargetLength)
	}

	a := s.A.Clone()
	b := s.B.Clone()
	n, m := a.Shape()

	pivotCol := make([]int, n)
	for r := range pivotCol {
		pivotCol[r] = NoPivot
	}

	var (
		row, col, p, r int
		on, bRow       bool
		err            error
	)
	for col = 0; col < m && row < n; col++ {
		// Find the pivot among the rows not yet fixed.
		if p, err = a.FirstSetInColumn(col, row); err != nil {
			return nil, gf2Errorf(opEliminate, err)
		}
		if p < 0 {
			continue // free column
		}

		// Move the pivot row up to the cursor.
		if err = a.SwapRows(row, p); err != nil {
			return nil, gf2Errorf(opEliminate, err)
		}
		if err = swapBits(b, row, p); err != nil {
			return nil, gf2Errorf(opEliminate, err)
		}
		pivotCol[row] = col

		// Clear col in every other row.
		if bRow, err = b.At(row); err != nil {
			return nil, gf2Errorf(opEliminate, err)
		}
		for r = 0; r < n; r++ {
			if r == row {
				continue
			}
			if on, err = a.At(r, col); err != nil {
				return nil, gf2Errorf(opEliminate, err)
			}
			if !on {
				continue
			}
			if err = a.XorRow(r, row, col); err != nil {
				return nil, gf2Errorf(opEliminate, err)
			}
			if bRow {
				if err = b.Flip(r); err != nil {
					return nil, gf2Errorf(opEliminate, err)
				}
			}
		}
		row++
	}

	e := &Echelon{A: a, B: b, PivotCol: pivotCol, Rank: row, Consistent: true}

	// 0 = 1 rows make the system infeasible.
	for r = e.Rank; r < n; r++ {
		if on, err = b.At(r); err != nil {
			return nil, gf2Errorf(opEliminate, err)
		}
		if on {
			e.Consistent = false
			break
		}
	}

	// Columns that never became pivots are the free variables.
	isPivot := make([]bool, m)
	for r = 0; r < e.Rank; r++ {
		isPivot[pivotCol[r]] = true
	}
	e.free = make([]int, 0, m-e.Rank)
	for col = 0; col < m; col++ {
		if !isPivot[col] {
			e.free = append(e.free, col)
		}
	}

	return e, nil
}

// FreeVars returns the free (non-pivot) columns in ascending order.
// The returned slice is a copy.
func (e *Echelon) FreeVars() []int {
	out := make([]int, len(e.free))
	copy(out, e.free)

	return out
}

// FreeCount returns k = m − Rank, the number of free variables.
func (e *Echelon) FreeCount() int { return len(e.free) }

// Vars returns m, the number of unknowns (buttons).
func (e *Echelon) Vars() int { return e.A.Cols() }

// IsReduced reports whether the echelon satisfies the full-reduction
// invariant: each pivot row has its leading 1 at its pivot column, and every
// pivot column is zero in all other rows.
// Complexity: O(n·Rank).
func (e *Echelon) IsReduced() bool {
	n := e.A.Rows()
	for r := 0; r < e.Rank; r++ {
		p := e.PivotCol[r]
		for i := 0; i < n; i++ {
			on, err := e.A.At(i, p)
			if err != nil || on != (i == r) {
				return false
			}
		}
		for c := 0; c < p; c++ {
			if on, err := e.A.At(r, c); err != nil || on {
				return false
			}
		}
	}

	return true
}

// swapBits exchanges bits i and k of v.
func swapBits(v *bitmatrix.Vector, i, k int) error {
	if i == k {
		return nil
	}
	bi, err := v.At(i)
	if err != nil {
		return err
	}
	bk, err := v.At(k)
	if err != nil {
		return err
	}
	if err = v.Set(i, bk); err != nil {
		return err
	}

	return v.Set(k, bi)
}
