// Package statelessstate_test exercises the inference-only inclusion store.
package statelessstate_test

import (
	"testing"

	"github.com/notEloiir/gotsetlin/densestate"
	"github.com/notEloiir/gotsetlin/rng"
	"github.com/notEloiir/gotsetlin/sparsestate"
	"github.com/notEloiir/gotsetlin/statelessstate"
	"github.com/stretchr/testify/require"
)

func TestNewInvalidShape(t *testing.T) {
	_, err := statelessstate.New(0, 4)
	require.ErrorIs(t, err, statelessstate.ErrInvalidShape)
}

func TestLoadClauseAndInclusions(t *testing.T) {
	s, err := statelessstate.New(1, 4)
	require.NoError(t, err)

	s.LoadClause(0, []uint32{1, 6})
	var got []uint32
	s.Inclusions(0, func(taID uint32) bool {
		got = append(got, taID)
		return true
	})
	require.Equal(t, []uint32{1, 6}, got)
}

func TestFromDenseMaterializesOnlyIncluded(t *testing.T) {
	d, err := densestate.New(1, 3, 127, -127, 0, rng.New(1))
	require.NoError(t, err)
	d.SetState(0, 0, 0, 10)  // ta_id 0 included
	d.SetState(0, 0, 1, -10) // ta_id 1 excluded
	d.SetState(0, 1, 0, -10) // ta_id 2 excluded
	d.SetState(0, 1, 1, -10) // ta_id 3 excluded
	d.SetState(0, 2, 0, -10) // ta_id 4 excluded
	d.SetState(0, 2, 1, 10)  // ta_id 5 included

	s, err := statelessstate.FromDense(d)
	require.NoError(t, err)
	require.Equal(t, []uint32{0, 5}, s.RawClause(0))
}

func TestFromSparseMaterializesOnlyIncluded(t *testing.T) {
	sp, err := sparsestate.New(1, 3, 1, 127, -127, 0, -40, -35)
	require.NoError(t, err)
	idx, _ := sp.Find(0, 2)
	require.NoError(t, sp.InsertAt(0, idx, 2, 10)) // included
	idx, _ = sp.Find(0, 4)
	require.NoError(t, sp.InsertAt(0, idx, 4, -10)) // tracked but excluded

	s, err := statelessstate.FromSparse(sp)
	require.NoError(t, err)
	require.Equal(t, []uint32{2}, s.RawClause(0))
}
