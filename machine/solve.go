// SPDX-License-Identifier: MIT

package machine

import (
	"github.com/katalvlaran/gf2press/gf2"
)

// SolveMachine returns the minimum number of presses that turns an all-off
// panel of the given size into target.
//
// Implementation:
//   - Stage 1: gf2.NewSystem validates the input and builds A and b.
//   - Stage 2: gf2.Eliminate reduces the system; an inconsistent system
//     yields an Infeasible Result without any search.
//   - Stage 3: gf2.MinWeight enumerates the free variables.
//
// Errors:
//   - gf2.ErrNegativeLights, gf2.ErrTargetLength, gf2.ErrLightOutOfRange for
//     structurally invalid machines.
//   - gf2.ErrSearchTooLarge when the free-variable count exceeds the cap
//     set through opts.
func SolveMachine(lights int, buttons [][]int, target []bool, opts ...gf2.Option) (Result, error) {
	sys, err := gf2.NewSystem(lights, buttons, target)
	if err != nil {
		return Result{}, err
	}
	ech, err := gf2.Eliminate(sys)
	if err != nil {
		return Result{}, err
	}
	res := Result{Rank: ech.Rank, FreeVars: ech.FreeCount()}
	if !ech.Consistent {
		res.Status = Infeasible
		return res, nil
	}

	sol, err := gf2.MinWeight(ech, opts...)
	if err != nil {
		return Result{}, err
	}
	res.Status = Solved
	res.Presses = sol.Weight
	res.Pressed = sol.X.Ones()

	return res, nil
}

// Solve is SolveMachine for a parsed Machine.
func Solve(m Machine, opts ...gf2.Option) (Result, error) {
	return SolveMachine(m.Lights, m.Buttons, m.Target, opts...)
}
