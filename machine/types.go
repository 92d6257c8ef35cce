// SPDX-License-Identifier: MIT

package machine

import (
	"strconv"
	"strings"
)

// Machine is one parsed machine description.
type Machine struct {
	Lights  int     // number of indicator lights
	Target  []bool  // desired panel, len == Lights
	Buttons [][]int // per button: indices of the lights it toggles
	Joltage []int   // joltage requirements; nil when the line has none
}

// String renders m back in the input line format.
func (m Machine) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for _, on := range m.Target {
		if on {
			b.WriteByte('#')
		} else {
			b.WriteByte('.')
		}
	}
	b.WriteByte(']')
	for _, btn := range m.Buttons {
		b.WriteString(" (")
		writeInts(&b, btn)
		b.WriteByte(')')
	}
	if m.Joltage != nil {
		b.WriteString(" {")
		writeInts(&b, m.Joltage)
		b.WriteByte('}')
	}

	return b.String()
}

func writeInts(b *strings.Builder, xs []int) {
	for k, x := range xs {
		if k > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(x))
	}
}

// Status tells whether a machine's target is reachable.
type Status uint8

const (
	// Solved means Presses holds the minimum number of presses.
	Solved Status = iota + 1
	// Infeasible means no combination of presses reaches the target.
	Infeasible
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Solved:
		return "solved"
	case Infeasible:
		return "infeasible"
	default:
		return "Status(" + strconv.Itoa(int(s)) + ")"
	}
}

// Result is the answer for one machine.
//   - Presses and Pressed are meaningful only when Status == Solved.
//   - Rank and FreeVars describe the underlying system in both cases.
type Result struct {
	Status   Status
	Presses  int   // minimum number of presses
	Pressed  []int // buttons of one optimal plan, ascending
	Rank     int   // rank of the toggle matrix
	FreeVars int   // buttons not determined by the target (k = m − rank)
}

// Solved reports whether the target was reachable.
func (r Result) Solved() bool { return r.Status == Solved }
