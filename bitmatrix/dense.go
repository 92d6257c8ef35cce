// SPDX-License-Identifier: MIT

// Package bitmatrix - Matrix: row-major bit storage & safe row operations.
//
// Purpose:
//   - Provide a fixed-size arena: one flat []uint64 buffer, each row occupying
//     `stride` consecutive words (offset of row i is i*stride).
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Expose the row operations used by GF(2) elimination (swap, XOR from a column, dot parity).
//
// Complexity quicksheet:
//   - NewMatrix: O(r*c/64) zero-init; At/Set/Toggle: O(1); SwapRows/XorRow/RowDot: O(c/64);
//     MulVec: O(r*c/64); Clone: O(r*c/64).

package bitmatrix

import (
	"fmt"
	"math/bits"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxToggle   = "Toggle"
	ctxRow      = "Row"
	ctxSwapRows = "SwapRows"
	ctxXorRow   = "XorRow"
	ctxRowDot   = "RowDot"
	ctxFirstSet = "FirstSetInColumn"
	ctxMulVec   = "MulVec"
)

// matrixErrorf wraps an error with a uniform Matrix context and call-site indices.
// Keeps messages stable ("Matrix.At(3,9): bitmatrix: index out of range") and
// preserves the sentinel via %w.
func matrixErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, a, b, err)
}

// Matrix is a rows×cols bit matrix over GF(2).
//   - r, c hold dimensions; both may be zero.
//   - stride is the number of words per row (wordsFor(c)).
//   - data is a flat buffer of length r*stride; padding bits beyond column c-1
//     in the last word of each row are kept zero.
type Matrix struct {
	r, c   int
	stride int
	data   []uint64
}

var _ fmt.Stringer = (*Matrix)(nil)

// NewMatrix creates an r×c zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with shape validation; zero rows or columns are legal
//     because an empty equation system is a valid (vacuous) input.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate one zero-filled buffer of rows*stride words.
//
// Complexity:
//   - Time O(r*c/64), Space O(r*c/64).
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	stride := wordsFor(cols)

	return &Matrix{
		r:      rows,
		c:      cols,
		stride: stride,
		data:   make([]uint64, rows*stride),
	}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.r, m.c }

// row returns the backing word slice of row i (no bounds check; shares storage).
func (m *Matrix) row(i int) []uint64 {
	return m.data[i*m.stride : (i+1)*m.stride]
}

// checkCell validates a (row, col) pair.
func (m *Matrix) checkCell(row, col int) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return ErrOutOfRange
	}

	return nil
}

// checkRow validates a row index.
func (m *Matrix) checkRow(row int) error {
	if row < 0 || row >= m.r {
		return ErrOutOfRange
	}

	return nil
}

// At reports whether entry (row, col) is 1.
// Returns ErrOutOfRange (wrapped with coordinates) on invalid indices; never panics.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (bool, error) {
	if err := m.checkCell(row, col); err != nil {
		return false, matrixErrorf(ctxAt, row, col, err)
	}

	return m.test(row, col), nil
}

// Set assigns entry (row, col).
// Returns ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, on bool) error {
	if err := m.checkCell(row, col); err != nil {
		return matrixErrorf(ctxSet, row, col, err)
	}
	mask := uint64(1) << uint(col&(wordBits-1))
	off := row*m.stride + col>>log2WordBits
	if on {
		m.data[off] |= mask
	} else {
		m.data[off] &^= mask
	}

	return nil
}

// Toggle flips entry (row, col).
// Returns ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Matrix) Toggle(row, col int) error {
	if err := m.checkCell(row, col); err != nil {
		return matrixErrorf(ctxToggle, row, col, err)
	}
	m.data[row*m.stride+col>>log2WordBits] ^= 1 << uint(col&(wordBits-1))

	return nil
}

// Row returns a copy of row i as a Vector of length Cols().
// Complexity: O(c/64).
func (m *Matrix) Row(i int) (*Vector, error) {
	if err := m.checkRow(i); err != nil {
		return nil, matrixErrorf(ctxRow, i, 0, err)
	}
	words := make([]uint64, m.stride)
	copy(words, m.row(i))

	return &Vector{n: m.c, words: words}, nil
}

// SwapRows exchanges rows i and k in place. i == k is a no-op.
// Complexity: O(c/64).
func (m *Matrix) SwapRows(i, k int) error {
	if err := m.checkRow(i); err != nil {
		return matrixErrorf(ctxSwapRows, i, k, err)
	}
	if err := m.checkRow(k); err != nil {
		return matrixErrorf(ctxSwapRows, i, k, err)
	}
	if i == k {
		return nil
	}
	ri, rk := m.row(i), m.row(k)
	for w := range ri {
		ri[w], rk[w] = rk[w], ri[w]
	}

	return nil
}

// XorRow adds row src into row dst (dst ^= src) for columns fromCol..Cols()-1.
// MAIN DESCRIPTION:
//   - The elementary row operation of GF(2) elimination. Columns before fromCol
//     in dst are left untouched.
//
// Implementation:
//   - Stage 1: validate dst, src in range and 0 <= fromCol <= Cols().
//   - Stage 2: XOR the first affected word under a mask (bits >= fromCol%64),
//     then XOR the remaining words whole.
//
// Errors:
//   - ErrOutOfRange for invalid rows or fromCol.
//
// Complexity:
//   - Time O(c/64), Space O(1).
func (m *Matrix) XorRow(dst, src, fromCol int) error {
	if err := m.checkRow(dst); err != nil {
		return matrixErrorf(ctxXorRow, dst, src, err)
	}
	if err := m.checkRow(src); err != nil {
		return matrixErrorf(ctxXorRow, dst, src, err)
	}
	if fromCol < 0 || fromCol > m.c {
		return matrixErrorf(ctxXorRow, dst, src, ErrOutOfRange)
	}
	if fromCol == m.c {
		return nil
	}
	d, s := m.row(dst), m.row(src)
	w := fromCol >> log2WordBits
	d[w] ^= s[w] &^ (1<<uint(fromCol&(wordBits-1)) - 1) // keep bits below fromCol
	for w++; w < m.stride; w++ {
		d[w] ^= s[w]
	}

	return nil
}

// RowDot returns the GF(2) inner product of row i with x: parity(popcount(row_i AND x)).
// Returns ErrDimensionMismatch when x.Len() != Cols().
// Complexity: O(c/64).
func (m *Matrix) RowDot(i int, x *Vector) (bool, error) {
	if err := m.checkRow(i); err != nil {
		return false, matrixErrorf(ctxRowDot, i, 0, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return false, matrixErrorf(ctxRowDot, i, 0, err)
	}

	return dotParity(m.row(i), x.words), nil
}

// FirstSetInColumn returns the smallest row index r >= fromRow with entry
// (r, col) == 1, or -1 when no such row exists.
// Returns ErrOutOfRange for an invalid col or fromRow outside [0, Rows()].
// Complexity: O(r).
func (m *Matrix) FirstSetInColumn(col, fromRow int) (int, error) {
	if col < 0 || col >= m.c || fromRow < 0 || fromRow > m.r {
		return -1, matrixErrorf(ctxFirstSet, col, fromRow, ErrOutOfRange)
	}
	for r := fromRow; r < m.r; r++ {
		if m.test(r, col) {
			return r, nil
		}
	}

	return -1, nil
}

// MulVec computes y = A·x over GF(2) (len(y) == Rows()).
// Returns ErrDimensionMismatch when x.Len() != Cols().
// Complexity: O(r*c/64).
func (m *Matrix) MulVec(x *Vector) (*Vector, error) {
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(ctxMulVec, m.r, m.c, err)
	}
	y := &Vector{n: m.r, words: make([]uint64, wordsFor(m.r))}
	for i := 0; i < m.r; i++ {
		if dotParity(m.row(i), x.words) {
			y.words[i>>log2WordBits] |= 1 << uint(i&(wordBits-1))
		}
	}

	return y, nil
}

// Equal reports whether a and m have the same shape and entries.
func (m *Matrix) Equal(a *Matrix) bool {
	if a == nil || a.r != m.r || a.c != m.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != a.data[k] {
			return false
		}
	}

	return true
}

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(r*c/64).
func (m *Matrix) Clone() *Matrix {
	cp := make([]uint64, len(m.data))
	copy(cp, m.data)

	return &Matrix{r: m.r, c: m.c, stride: m.stride, data: cp}
}

// String renders one line per row with '0'/'1' characters, e.g. "110\n011\n".
// Intended for diagnostics and test failure messages.
func (m *Matrix) String() string {
	var b strings.Builder
	b.Grow(m.r * (m.c + 1))
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if m.test(i, j) {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// test reads (row, col) without bounds checks.
func (m *Matrix) test(row, col int) bool {
	return m.data[row*m.stride+col>>log2WordBits]&(1<<uint(col&(wordBits-1))) != 0
}

// dotParity returns the parity of popcount(a AND b); a and b have equal length.
func dotParity(a, b []uint64) bool {
	var acc uint64
	for k := range a {
		acc ^= a[k] & b[k]
	}

	return bits.OnesCount64(acc)&1 == 1
}
