// SPDX-License-Identifier: MIT

package gf2

import (
	"errors"
	"fmt"
)

// Sentinel errors for gf2 operations. Match with errors.Is; call sites wrap
// them with the operation name and offending values.
var (
	// ErrNegativeLights indicates a negative light count.
	ErrNegativeLights = errors.New("gf2: light count must be >= 0")

	// ErrLightOutOfRange indicates a button references a light outside [0, lights).
	ErrLightOutOfRange = errors.New("gf2: button references light outside range")

	// ErrTargetLength indicates len(target) differs from the light count.
	ErrTargetLength = errors.New("gf2: target length does not match light count")

	// ErrNilSystem indicates a nil *System or *Echelon was passed.
	ErrNilSystem = errors.New("gf2: nil system")

	// ErrInconsistent indicates A·x = b has no solution.
	// Searches return it; the machine layer turns it into an Infeasible result.
	ErrInconsistent = errors.New("gf2: system is inconsistent")

	// ErrSearchTooLarge indicates the free-variable count exceeds the search cap.
	ErrSearchTooLarge = errors.New("gf2: too many free variables to enumerate")

	// ErrMaskOutOfRange indicates a free-variable mask with bits at or above 2^k.
	ErrMaskOutOfRange = errors.New("gf2: free-variable mask out of range")
)

// Operation tags for error wrapping.
const (
	opNewSystem  = "NewSystem"
	opFromMatrix = "FromMatrix"
	opVerify     = "Verify"
	opEliminate  = "Eliminate"
	opAssign     = "Assign"
	opEnumerate  = "Enumerate"
	opMinWeight  = "MinWeight"
)

// gf2Errorf wraps err with an operation tag, preserving it for errors.Is.
func gf2Errorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
