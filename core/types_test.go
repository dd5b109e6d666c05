// Package core_test exercises Params validation and derivation.
package core_test

import (
	"testing"

	"github.com/notEloiir/gotsetlin/core"
	"github.com/stretchr/testify/require"
)

func validParams() core.Params {
	return core.Params{
		NumClasses: 2, NumClauses: 4, NumLiterals: 3, Threshold: 10,
		MaxState: 127, MinState: -127, S: 3.0,
	}
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, validParams().Validate())

	p := validParams()
	p.NumClasses = 0
	require.ErrorIs(t, p.Validate(), core.ErrTooFewClasses)

	p = validParams()
	p.NumClauses = 0
	require.ErrorIs(t, p.Validate(), core.ErrTooFewClauses)

	p = validParams()
	p.NumLiterals = 0
	require.ErrorIs(t, p.Validate(), core.ErrTooFewLiterals)

	p = validParams()
	p.Threshold = 0
	require.ErrorIs(t, p.Validate(), core.ErrBadThreshold)

	p = validParams()
	p.MinState = p.MaxState
	require.ErrorIs(t, p.Validate(), core.ErrBadStateRange)

	p = validParams()
	p.S = 1.0
	require.ErrorIs(t, p.Validate(), core.ErrBadSensitivity)
}

func TestParamsDerive(t *testing.T) {
	p := core.Params{MaxState: 127, MinState: -127, S: 10.0}
	d := p.Derive()

	require.Equal(t, int8(0), d.MidState)
	require.InDelta(t, 0.1, d.SInv, 1e-9)
	require.InDelta(t, 0.9, d.SM1Inv, 1e-9)
	require.Equal(t, int8(-40), d.SparseMinState)
	require.Equal(t, int8(-35), d.SparseInitState)
}

func TestDeriveTruncatesTowardZero(t *testing.T) {
	// (max+min)/2 must truncate toward zero like C integer division.
	p := core.Params{MaxState: 3, MinState: -2, S: 2.0}
	d := p.Derive()
	require.Equal(t, int8(0), d.MidState) // (3-2)/2 == 0 (truncated)
}

func TestActionThreshold(t *testing.T) {
	require.Equal(t, uint8(1), core.Action(0, 0))
	require.Equal(t, uint8(1), core.Action(1, 0))
	require.Equal(t, uint8(0), core.Action(-1, 0))
}

func TestTAIDRoundTrip(t *testing.T) {
	for lit := uint32(0); lit < 5; lit++ {
		for pol := uint8(0); pol < 2; pol++ {
			id := core.TAID(lit, pol)
			gotLit, gotPol := core.SplitTAID(id)
			require.Equal(t, lit, gotLit)
			require.Equal(t, pol, gotPol)
		}
	}
}

func TestClip(t *testing.T) {
	require.Equal(t, int32(5), core.Clip(5, 100))
	require.Equal(t, int32(100), core.Clip(500, 100))
	require.Equal(t, int32(-100), core.Clip(-500, 100))
}

func TestClampInt8(t *testing.T) {
	require.Equal(t, int8(127), core.ClampInt8(200, -127, 127))
	require.Equal(t, int8(-127), core.ClampInt8(-200, -127, 127))
	require.Equal(t, int8(5), core.ClampInt8(5, -127, 127))
}

func TestClampInt16(t *testing.T) {
	require.Equal(t, int16(32767), core.ClampInt16(100000))
	require.Equal(t, int16(-32768), core.ClampInt16(-100000))
}
