// SPDX-License-Identifier: MIT

// Package bitmatrix - Vector: fixed-length bit vector over GF(2).
//
// Purpose:
//   - Hold one bit per coordinate, packed little-endian into uint64 words
//     (bit i lives in words[i/64] at position i%64).
//   - Provide the vector-side primitives used by elimination and search:
//     XOR accumulation, Hamming weight and per-bit access.
//
// Invariant:
//   - Bits at positions >= n inside the last word are always zero, so
//     OnesCount and Equal can work word-wise without masking.

package bitmatrix

import (
	"fmt"
	"math/bits"
	"strings"
)

const (
	wordBits     = 64 // bits per storage word
	log2WordBits = 6  // log2(wordBits); i>>log2WordBits == i/64
)

const (
	ctxVecAt   = "At"
	ctxVecSet  = "Set"
	ctxVecFlip = "Flip"
	ctxVecXor  = "Xor"
)

// wordsFor returns the number of uint64 words needed to hold n bits.
func wordsFor(n int) int { return (n + wordBits - 1) >> log2WordBits }

// vectorErrorf wraps err with the Vector method name and bit index.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// Vector is a bit vector of fixed length over GF(2).
// The zero value is an empty (length 0) vector.
type Vector struct {
	n     int      // logical length in bits
	words []uint64 // packed storage, len == wordsFor(n)
}

var _ fmt.Stringer = (*Vector)(nil)

// NewVector returns an all-zero vector of length n.
// Returns ErrInvalidDimensions when n < 0.
// Complexity: O(n/64).
func NewVector(n int) (*Vector, error) {
	if n < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Vector{n: n, words: make([]uint64, wordsFor(n))}, nil
}

// VectorFromBits packs a []bool into a new Vector of the same length.
// Complexity: O(len(b)).
func VectorFromBits(b []bool) *Vector {
	v := &Vector{n: len(b), words: make([]uint64, wordsFor(len(b)))}
	for i, on := range b {
		if on {
			v.words[i>>log2WordBits] |= 1 << uint(i&(wordBits-1))
		}
	}

	return v
}

// Len returns the logical length in bits.
func (v *Vector) Len() int { return v.n }

// At reports whether bit i is set. Returns ErrOutOfRange for invalid i.
// Complexity: O(1).
func (v *Vector) At(i int) (bool, error) {
	if i < 0 || i >= v.n {
		return false, vectorErrorf(ctxVecAt, i, ErrOutOfRange)
	}

	return v.test(i), nil
}

// Set assigns bit i. Returns ErrOutOfRange for invalid i.
// Complexity: O(1).
func (v *Vector) Set(i int, on bool) error {
	if i < 0 || i >= v.n {
		return vectorErrorf(ctxVecSet, i, ErrOutOfRange)
	}
	v.assign(i, on)

	return nil
}

// Flip toggles bit i (adds 1 in GF(2)). Returns ErrOutOfRange for invalid i.
// Complexity: O(1).
func (v *Vector) Flip(i int) error {
	if i < 0 || i >= v.n {
		return vectorErrorf(ctxVecFlip, i, ErrOutOfRange)
	}
	v.words[i>>log2WordBits] ^= 1 << uint(i&(wordBits-1))

	return nil
}

// Xor adds w into v in place (v ^= w). Both must have the same length.
// Returns ErrNilVector for nil w and ErrDimensionMismatch for a length mismatch.
// Complexity: O(n/64).
func (v *Vector) Xor(w *Vector) error {
	if w == nil {
		return vectorErrorf(ctxVecXor, v.n, ErrNilVector)
	}
	if w.n != v.n {
		return vectorErrorf(ctxVecXor, v.n, ErrDimensionMismatch)
	}
	for k := range v.words {
		v.words[k] ^= w.words[k]
	}

	return nil
}

// OnesCount returns the Hamming weight (number of set bits).
// Complexity: O(n/64).
func (v *Vector) OnesCount() int {
	var c int
	for _, w := range v.words {
		c += bits.OnesCount64(w)
	}

	return c
}

// IsZero reports whether no bit is set.
func (v *Vector) IsZero() bool {
	for _, w := range v.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// Reset clears every bit, keeping the length.
func (v *Vector) Reset() {
	for k := range v.words {
		v.words[k] = 0
	}
}

// Ones returns the indices of set bits in ascending order.
// Complexity: O(n/64 + weight).
func (v *Vector) Ones() []int {
	out := make([]int, 0, v.OnesCount())
	for k, w := range v.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			out = append(out, k<<log2WordBits+tz)
			w &= w - 1 // clear lowest set bit
		}
	}

	return out
}

// Bits unpacks the vector into a []bool of length Len().
func (v *Vector) Bits() []bool {
	out := make([]bool, v.n)
	for i := range out {
		out[i] = v.test(i)
	}

	return out
}

// Equal reports whether v and w have the same length and bits.
func (v *Vector) Equal(w *Vector) bool {
	if w == nil || v.n != w.n {
		return false
	}
	for k := range v.words {
		if v.words[k] != w.words[k] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy.
func (v *Vector) Clone() *Vector {
	cp := make([]uint64, len(v.words))
	copy(cp, v.words)

	return &Vector{n: v.n, words: cp}
}

// String renders bits as '0'/'1' characters, index 0 first.
func (v *Vector) String() string {
	var b strings.Builder
	b.Grow(v.n)
	for i := 0; i < v.n; i++ {
		if v.test(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}

	return b.String()
}

// test reads bit i without bounds checks (internal hot path).
func (v *Vector) test(i int) bool {
	return v.words[i>>log2WordBits]&(1<<uint(i&(wordBits-1))) != 0
}

// assign writes bit i without bounds checks (internal hot path).
func (v *Vector) assign(i int, on bool) {
	mask := uint64(1) << uint(i&(wordBits-1))
	if on {
		v.words[i>>log2WordBits] |= mask
	} else {
		v.words[i>>log2WordBits] &^= mask
	}
}
