// Package densestate_test exercises the dense automaton store.
package densestate_test

import (
	"testing"

	"github.com/notEloiir/gotsetlin/densestate"
	"github.com/notEloiir/gotsetlin/rng"
	"github.com/stretchr/testify/require"
)

func TestNewInvalidShape(t *testing.T) {
	_, err := densestate.New(0, 3, 127, -127, 0, rng.New(1))
	require.ErrorIs(t, err, densestate.ErrInvalidShape)

	_, err = densestate.New(3, 0, 127, -127, 0, rng.New(1))
	require.ErrorIs(t, err, densestate.ErrInvalidShape)
}

func TestRandomizeProducesBoundaryPairs(t *testing.T) {
	s, err := densestate.New(4, 5, 127, -127, 0, rng.New(42))
	require.NoError(t, err)

	for c := uint32(0); c < 4; c++ {
		for lit := uint32(0); lit < 5; lit++ {
			pos := s.State(c, lit, 0)
			neg := s.State(c, lit, 1)
			// Exactly one of the pair sits at mid-1, the other at mid.
			require.True(t,
				(pos == -1 && neg == 0) || (pos == 0 && neg == -1),
				"clause %d literal %d: pos=%d neg=%d", c, lit, pos, neg)
		}
	}
}

func TestSetStateAndAction(t *testing.T) {
	s, err := densestate.New(1, 1, 127, -127, 0, rng.New(1))
	require.NoError(t, err)

	s.SetState(0, 0, 0, 5)
	require.Equal(t, uint8(1), s.Action(0, 0, 0))

	s.SetState(0, 0, 0, -1)
	require.Equal(t, uint8(0), s.Action(0, 0, 0))
}

func TestInclusionsAscendingOrder(t *testing.T) {
	s, err := densestate.New(1, 3, 127, -127, 0, rng.New(1))
	require.NoError(t, err)

	// Force a known inclusion pattern: literal0 pos included, literal1 neg
	// included, literal2 nothing included.
	s.SetState(0, 0, 0, 10)
	s.SetState(0, 0, 1, -10)
	s.SetState(0, 1, 0, -10)
	s.SetState(0, 1, 1, 10)
	s.SetState(0, 2, 0, -10)
	s.SetState(0, 2, 1, -10)

	var got []uint32
	s.Inclusions(0, func(taID uint32) bool {
		got = append(got, taID)
		return true
	})

	require.Equal(t, []uint32{0, 3}, got) // ta_id 0 = (lit0,pol0), ta_id 3 = (lit1,pol1)
}

func TestInclusionsEarlyStop(t *testing.T) {
	s, err := densestate.New(1, 3, 127, -127, 0, rng.New(1))
	require.NoError(t, err)
	s.SetState(0, 0, 0, 10)
	s.SetState(0, 1, 0, 10)

	count := 0
	s.Inclusions(0, func(taID uint32) bool {
		count++
		return false
	})
	require.Equal(t, 1, count)
}

func TestLoadStatesLengthMismatch(t *testing.T) {
	s, err := densestate.New(2, 2, 127, -127, 0, rng.New(1))
	require.NoError(t, err)

	err = s.LoadStates(make([]int8, 3))
	require.ErrorIs(t, err, densestate.ErrStateLengthMismatch)
}

func TestLoadStatesRoundTrip(t *testing.T) {
	s, err := densestate.New(2, 2, 127, -127, 0, rng.New(1))
	require.NoError(t, err)

	raw := append([]int8(nil), s.RawStates()...)
	raw[0] = 99

	require.NoError(t, s.LoadStates(raw))
	require.Equal(t, int8(99), s.State(0, 0, 0))
}
