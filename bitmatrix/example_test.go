package bitmatrix_test

import (
	"fmt"

	"github.com/katalvlaran/gf2press/bitmatrix"
)

// ExampleMatrix_MulVec shows A·x over GF(2): each row is the parity of the
// selected columns, so a light hit by two pressed buttons ends up off.
func ExampleMatrix_MulVec() {
	a, _ := bitmatrix.NewMatrix(3, 3)
	// Column j = lights toggled by button j.
	_ = a.Set(0, 0, true)
	_ = a.Set(1, 0, true)
	_ = a.Set(1, 1, true)
	_ = a.Set(2, 1, true)
	_ = a.Set(0, 2, true)
	_ = a.Set(2, 2, true)

	x := bitmatrix.VectorFromBits([]bool{true, true, false})
	y, _ := a.MulVec(x)
	fmt.Print(a)
	fmt.Println("x =", x)
	fmt.Println("y =", y)
	// Output:
	// 101
	// 110
	// 011
	// x = 110
	// y = 101
}
