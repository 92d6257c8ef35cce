package bitmatrix_test

import (
	"testing"

	"github.com/katalvlaran/gf2press/bitmatrix"
)

// benchmarkMulVec runs A·x on an n×n matrix with a checkerboard pattern.
func benchmarkMulVec(b *testing.B, n int) {
	a, err := bitmatrix.NewMatrix(n, n)
	if err != nil {
		b.Fatalf("NewMatrix: %v", err)
	}
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = i%3 == 0
		for j := 0; j < n; j++ {
			if (i+j)%2 == 0 {
				_ = a.Set(i, j, true)
			}
		}
	}
	x := bitmatrix.VectorFromBits(bits)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := a.MulVec(x); err != nil {
			b.Fatalf("MulVec: %v", err)
		}
	}
}

// BenchmarkMulVec_16 covers puzzle-sized systems.
func BenchmarkMulVec_16(b *testing.B) { benchmarkMulVec(b, 16) }

// BenchmarkMulVec_256 covers multi-word rows.
func BenchmarkMulVec_256(b *testing.B) { benchmarkMulVec(b, 256) }
