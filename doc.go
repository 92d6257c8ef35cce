// Package gf2press finds the fewest button presses that configure a panel of
// toggle lights.
//
// 🚀 What is gf2press?
//
//	Every button flips a fixed set of lights; pressing twice cancels out.
//	The whole puzzle is therefore a linear system over GF(2), and the answer
//	is its solution of minimum Hamming weight. The module is organized as:
//
//	bitmatrix/     : bit-packed matrices and vectors over GF(2)
//	gf2/           : system builder, Gauss–Jordan elimination, min-weight search
//	machine/       : machine line parser, per-machine solver, batch summation
//	cmd/gf2press/  : command-line front end
//
// Quick example:
//
//	[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
//
//	reaches lights 1 and 2 with two presses: (0,2) then (0,1).
//
//	go run ./cmd/gf2press -input input.txt
package gf2press
