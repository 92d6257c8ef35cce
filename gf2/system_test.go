package gf2_test

import (
	"testing"

	"github.com/katalvlaran/gf2press/bitmatrix"
	"github.com/katalvlaran/gf2press/gf2"
	"github.com/stretchr/testify/require"
)

// TestNewSystemLayout checks A[i][j] = 1 iff button j lists light i.
func TestNewSystemLayout(t *testing.T) {
	s, err := gf2.NewSystem(3, [][]int{{0, 1}, {1, 2}, {0, 2}}, []bool{true, true, false})
	require.NoError(t, err)
	require.Equal(t, 3, s.Lights())
	require.Equal(t, 3, s.Buttons())
	require.Equal(t, "101\n110\n011\n", s.A.String())
	require.Equal(t, "110", s.B.String())
}

// TestNewSystemSetSemantics checks a light repeated inside one button stays a single 1,
// and duplicate buttons become identical columns.
func TestNewSystemSetSemantics(t *testing.T) {
	s, err := gf2.NewSystem(2, [][]int{{0, 0}, {0, 0}, {}}, []bool{false, false})
	require.NoError(t, err)
	require.Equal(t, "110\n000\n", s.A.String())
}

// TestNewSystemErrors covers every structural rejection.
func TestNewSystemErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		lights  int
		buttons [][]int
		target  []bool
		wantErr error
	}{
		{"negative lights", -1, nil, nil, gf2.ErrNegativeLights},
		{"short target", 2, nil, []bool{true}, gf2.ErrTargetLength},
		{"long target", 1, nil, []bool{true, false}, gf2.ErrTargetLength},
		{"index too big", 2, [][]int{{0}, {2}}, []bool{false, false}, gf2.ErrLightOutOfRange},
		{"negative index", 2, [][]int{{-1}}, []bool{false, false}, gf2.ErrLightOutOfRange},
		{"any index with zero lights", 0, [][]int{{0}}, nil, gf2.ErrLightOutOfRange},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s, err := gf2.NewSystem(tc.lights, tc.buttons, tc.target)
			require.ErrorIs(t, err, tc.wantErr)
			require.Nil(t, s)
		})
	}
}

// TestNewSystemErrorNamesButton checks the error message locates the bad index.
func TestNewSystemErrorNamesButton(t *testing.T) {
	_, err := gf2.NewSystem(2, [][]int{{0}, {1, 5}}, []bool{false, false})
	require.ErrorIs(t, err, gf2.ErrLightOutOfRange)
	require.Contains(t, err.Error(), "button 1 light 5")
}

// TestVerify checks the independent A·x = b round trip.
func TestVerify(t *testing.T) {
	s, err := gf2.NewSystem(3, [][]int{{0, 1}, {1, 2}, {0, 2}}, []bool{true, false, true})
	require.NoError(t, err)

	ok, err := s.Verify(bitmatrix.VectorFromBits([]bool{true, true, false}))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.Verify(bitmatrix.VectorFromBits([]bool{true, false, false}))
	require.NoError(t, err)
	require.False(t, ok)

	_, err = s.Verify(bitmatrix.VectorFromBits([]bool{true}))
	require.ErrorIs(t, err, bitmatrix.ErrDimensionMismatch)
}

// TestFromMatrix checks cloning and shape validation.
func TestFromMatrix(t *testing.T) {
	a, err := bitmatrix.NewMatrix(2, 1)
	require.NoError(t, err)
	require.NoError(t, a.Set(1, 0, true))
	b := bitmatrix.VectorFromBits([]bool{false, true})

	s, err := gf2.FromMatrix(a, b)
	require.NoError(t, err)
	require.NoError(t, a.Toggle(1, 0)) // caller mutation must not leak
	require.Equal(t, "0\n1\n", s.A.String())

	_, err = gf2.FromMatrix(nil, b)
	require.ErrorIs(t, err, gf2.ErrNilSystem)
	_, err = gf2.FromMatrix(a, nil)
	require.ErrorIs(t, err, gf2.ErrNilSystem)
	_, err = gf2.FromMatrix(a, bitmatrix.VectorFromBits([]bool{true}))
	require.ErrorIs(t, err, gf2.ErrTargetLength)
}
