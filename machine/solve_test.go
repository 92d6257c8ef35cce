package machine_test

import (
	"testing"

	"github.com/katalvlaran/gf2press/gf2"
	"github.com/katalvlaran/gf2press/machine"
	"github.com/stretchr/testify/require"
)

// TestSolveSample checks the known minimum of each sample machine and that
// the reported plan really produces the target.
func TestSolveSample(t *testing.T) {
	for i, line := range sampleLines {
		m, err := machine.ParseLine(line)
		require.NoError(t, err)

		res, err := machine.Solve(m)
		require.NoError(t, err)
		require.Equal(t, machine.Solved, res.Status)
		require.Equalf(t, sampleMinimums[i], res.Presses, "machine %d", i)
		require.Len(t, res.Pressed, res.Presses)
		require.Equal(t, len(m.Buttons)-res.Rank, res.FreeVars)

		panel := make([]bool, m.Lights)
		for _, j := range res.Pressed {
			for _, l := range m.Buttons[j] {
				panel[l] = !panel[l]
			}
		}
		require.Equal(t, m.Target, panel)
	}
}

// TestSolveMachineInfeasible: a button that toggles nothing cannot light anything.
func TestSolveMachineInfeasible(t *testing.T) {
	res, err := machine.SolveMachine(1, [][]int{{}}, []bool{true})
	require.NoError(t, err)
	require.Equal(t, machine.Infeasible, res.Status)
	require.False(t, res.Solved())
	require.Equal(t, 0, res.Rank)
	require.Equal(t, 1, res.FreeVars)

	res, err = machine.SolveMachine(2, [][]int{{0}, {0}}, []bool{false, true})
	require.NoError(t, err)
	require.Equal(t, machine.Infeasible, res.Status)
}

// TestSolveMachineTrivial covers inputs that need no presses at all.
func TestSolveMachineTrivial(t *testing.T) {
	res, err := machine.SolveMachine(0, nil, nil)
	require.NoError(t, err)
	require.True(t, res.Solved())
	require.Equal(t, 0, res.Presses)
	require.Empty(t, res.Pressed)

	res, err = machine.SolveMachine(3, [][]int{{0}, {1, 2}}, []bool{false, false, false})
	require.NoError(t, err)
	require.True(t, res.Solved())
	require.Equal(t, 0, res.Presses)
}

// TestSolveMachineErrors checks structural problems surface as gf2 errors.
func TestSolveMachineErrors(t *testing.T) {
	_, err := machine.SolveMachine(2, [][]int{{0, 2}}, []bool{true, false})
	require.ErrorIs(t, err, gf2.ErrLightOutOfRange)

	_, err = machine.SolveMachine(2, [][]int{{0}}, []bool{true})
	require.ErrorIs(t, err, gf2.ErrTargetLength)

	_, err = machine.SolveMachine(-1, nil, nil)
	require.ErrorIs(t, err, gf2.ErrNegativeLights)

	m, err := machine.ParseLine(sampleLines[0]) // 6 buttons, 4 lights: k >= 2
	require.NoError(t, err)
	_, err = machine.Solve(m, gf2.WithMaxFreeVars(1))
	require.ErrorIs(t, err, gf2.ErrSearchTooLarge)
}

// TestStatusString checks the Stringer output used in logs.
func TestStatusString(t *testing.T) {
	require.Equal(t, "solved", machine.Solved.String())
	require.Equal(t, "infeasible", machine.Infeasible.String())
	require.Equal(t, "Status(0)", machine.Status(0).String())
}
