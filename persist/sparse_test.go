package persist_test

import (
	"bytes"
	"testing"

	"github.com/notEloiir/gotsetlin/densestate"
	"github.com/notEloiir/gotsetlin/persist"
	"github.com/notEloiir/gotsetlin/rng"
	"github.com/notEloiir/gotsetlin/sparsestate"
	"github.com/notEloiir/gotsetlin/vote"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadSparseRoundTrip(t *testing.T) {
	p := testParams()
	d := p.Derive()

	store, err := sparsestate.New(p.NumClauses, p.NumLiterals, p.NumClasses, p.MaxState, p.MinState, d.MidState, d.SparseMinState, d.SparseInitState)
	require.NoError(t, err)
	require.NoError(t, store.InsertAt(0, 0, 2, d.MidState))
	require.NoError(t, store.InsertAt(2, 0, 5, d.MidState-1))

	weights, err := vote.NewWeights(p.NumClauses, p.NumClasses, rng.New(3))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, persist.SaveSparse(&buf, p, weights, store))

	gotParams, gotWeights, gotStore, err := persist.LoadSparse(&buf)
	require.NoError(t, err)

	require.Equal(t, p, gotParams)
	require.Equal(t, weights.Raw(), gotWeights.Raw())
	for c := uint32(0); c < p.NumClauses; c++ {
		require.Equal(t, store.RawClause(c), gotStore.RawClause(c))
	}
}

func TestLoadSparseMissingSentinel(t *testing.T) {
	p := testParams()
	var buf bytes.Buffer
	require.NoError(t, persist.WriteHeader(&buf, persist.FromParams(p)))
	w, err := vote.NewWeights(p.NumClauses, p.NumClasses, rng.New(1))
	require.NoError(t, err)
	require.NoError(t, persist.WriteWeights(&buf, w))
	// no clause data at all, stream ends early.

	_, _, _, err = persist.LoadSparse(&buf)
	require.ErrorIs(t, err, persist.ErrMissingSentinel)
}

func TestLoadSparseFromDense(t *testing.T) {
	p := testParams()
	d := p.Derive()

	dense, err := densestate.New(p.NumClauses, p.NumLiterals, p.MaxState, p.MinState, d.MidState, rng.New(9))
	require.NoError(t, err)
	weights, err := vote.NewWeights(p.NumClauses, p.NumClasses, rng.New(10))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, persist.SaveDense(&buf, p, weights, dense))

	gotParams, _, sparse, err := persist.LoadSparseFromDense(&buf)
	require.NoError(t, err)
	require.Equal(t, p, gotParams)

	for c := uint32(0); c < p.NumClauses; c++ {
		var wantIDs []uint32
		dense.Inclusions(c, func(taID uint32) bool {
			wantIDs = append(wantIDs, taID)
			return true
		})

		var gotIDs []uint32
		for _, e := range sparse.RawClause(c) {
			gotIDs = append(gotIDs, e.TAID)
		}
		require.Equal(t, wantIDs, gotIDs)
	}
}
