// SPDX-License-Identifier: MIT

// Package bitmatrix provides bit-packed matrices and vectors over GF(2).
//
// 🚀 What is it for?
//
//	Toggle puzzles, parity checks and XOR-linear systems all live in the
//	two-element field GF(2): addition is XOR, multiplication is AND. This
//	package stores such data one bit per entry, packed into uint64 words,
//	and exposes exactly the row operations Gaussian elimination needs:
//	  • SwapRows      : exchange two rows
//	  • XorRow        : add (XOR) one row into another from a column onward
//	  • RowDot        : parity of a row AND a vector (one entry of A·x)
//	  • MulVec        : the full product A·x
//
// ✨ Key properties:
//   - row-major storage with a fixed per-row word stride (arena style);
//   - zero-sized shapes are legal (a 0×0 system is vacuously satisfied);
//   - public accessors never panic on bad indices; they return sentinels
//     wrapped with the method name and coordinates;
//   - Clone is deep; nothing aliases unless you ask for it.
//
// ⚙️ Usage:
//
//	a, _ := bitmatrix.NewMatrix(3, 2)
//	_ = a.Set(0, 0, true)
//	_ = a.Set(1, 0, true)
//	x := bitmatrix.VectorFromBits([]bool{true, false})
//	y, _ := a.MulVec(x) // y == "110"
//
// Complexity:
//
//   - At/Set/Toggle: O(1)
//   - SwapRows/XorRow/RowDot: O(cols/64)
//   - MulVec: O(rows·cols/64)
package bitmatrix
