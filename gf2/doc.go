// Package gf2 solves toggle systems A·x = b over GF(2) for a solution of
// minimum Hamming weight.
//
// 🚀 What problem does it solve?
//
//	A panel of n lights starts all off. Each of m buttons flips a fixed set
//	of lights. Presses commute and pressing a button twice undoes it, so a
//	press plan is a bit vector x (one bit per button) and the final panel is
//	A·x, where column j of A marks the lights of button j. Reaching target b
//	with the fewest presses means: among all solutions of A·x = b, pick one
//	with the fewest 1-bits.
//
// ⚙️ Pipeline:
//
//	NewSystem  : build A (lights × buttons) and b from index lists
//	Eliminate  : Gauss–Jordan over GF(2): reduced row echelon form,
//	             pivot column per row, rank, consistency flag
//	MinWeight  : enumerate the 2^k assignments of the k = m − rank free
//	             variables, back-substitute pivots (last pivot row first),
//	             keep the lightest
//
//	sys, _ := gf2.NewSystem(3, [][]int{{0, 1}, {1, 2}, {0, 2}}, []bool{true, true, false})
//	ech, _ := gf2.Eliminate(sys)
//	sol, _ := gf2.MinWeight(ech)
//	fmt.Println(sol.Weight) // 1
//
// Performance:
//
//   - Elimination: O(n·m·m/64)
//   - Search:      O(2^k · rank · m/64), capped by WithMaxFreeVars
//     (DefaultMaxFreeVars); exceeding the cap yields ErrSearchTooLarge.
//
// All functions are pure: inputs are never mutated and no state is shared,
// so independent systems may be solved concurrently.
package gf2
