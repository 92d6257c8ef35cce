// Package machine turns factory machine descriptions into minimum press
// counts.
//
// A machine line looks like
//
//	[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
//
// The bracketed pattern is the target light panel ('#' on, '.' off), every
// parenthesised group is a button listing the lights it toggles, and the
// optional braced list carries joltage requirements, which are parsed and
// kept but do not take part in the light puzzle.
//
// Parse reads such lines, Solve answers one machine through package gf2,
// and SolveAll fans a batch out over a bounded worker pool and sums the
// answers. A machine whose target cannot be reached is reported as an
// Infeasible Result rather than an error.
package machine
