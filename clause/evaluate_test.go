// Package clause_test exercises clause evaluation across representations.
package clause_test

import (
	"testing"

	"github.com/notEloiir/gotsetlin/clause"
	"github.com/notEloiir/gotsetlin/densestate"
	"github.com/notEloiir/gotsetlin/rng"
	"github.com/notEloiir/gotsetlin/sparsestate"
	"github.com/stretchr/testify/require"
)

func TestEvaluateEmptyClauseRespectsSkipEmpty(t *testing.T) {
	d, err := densestate.New(1, 3, 127, -127, 0, rng.New(1))
	require.NoError(t, err)
	for lit := uint32(0); lit < 3; lit++ {
		d.SetState(0, lit, 0, -10)
		d.SetState(0, lit, 1, -10)
	}
	X := []uint8{1, 0, 1}

	require.Equal(t, uint8(1), clause.Evaluate(d, 0, X, false)) // training: empty clause active
	require.Equal(t, uint8(0), clause.Evaluate(d, 0, X, true))  // inference: empty clause inactive
}

func TestEvaluateDeactivatesOnMismatch(t *testing.T) {
	d, err := densestate.New(1, 2, 127, -127, 0, rng.New(1))
	require.NoError(t, err)
	d.SetState(0, 0, 0, 10)  // positive literal 0 included, requires X[0]==1
	d.SetState(0, 0, 1, -10) // negated literal 0 excluded
	d.SetState(0, 1, 0, -10) // positive literal 1 excluded
	d.SetState(0, 1, 1, -10) // negated literal 1 excluded

	require.Equal(t, uint8(1), clause.Evaluate(d, 0, []uint8{1, 0}, true)) // satisfied
	require.Equal(t, uint8(0), clause.Evaluate(d, 0, []uint8{0, 0}, true)) // literal 0 false -> clause off
}

func TestEvaluateAllShapeValidation(t *testing.T) {
	d, err := densestate.New(2, 2, 127, -127, 0, rng.New(1))
	require.NoError(t, err)

	out := make([]uint8, 2)
	require.ErrorIs(t, clause.EvaluateAll(d, []uint8{1}, true, out), clause.ErrRowLengthMismatch)
	require.ErrorIs(t, clause.EvaluateAll(d, []uint8{1, 0}, true, make([]uint8, 1)), clause.ErrOutputLengthMismatch)
}

func TestEvaluateAgreesAcrossDenseAndSparse(t *testing.T) {
	dense, err := densestate.New(1, 2, 127, -127, 0, rng.New(1))
	require.NoError(t, err)
	dense.SetState(0, 0, 0, 10)
	dense.SetState(0, 0, 1, -10)
	dense.SetState(0, 1, 0, -10)
	dense.SetState(0, 1, 1, 10)

	sparse, err := sparsestate.New(1, 2, 1, 127, -127, 0, -40, -35)
	require.NoError(t, err)
	idx, _ := sparse.Find(0, 0)
	require.NoError(t, sparse.InsertAt(0, idx, 0, 10)) // positive literal 0
	idx, _ = sparse.Find(0, 3)
	require.NoError(t, sparse.InsertAt(0, idx, 3, 10)) // negated literal 1

	for _, X := range [][]uint8{{1, 0}, {1, 1}, {0, 0}, {0, 1}} {
		require.Equal(t, clause.Evaluate(dense, 0, X, true), clause.Evaluate(sparse, 0, X, true), "X=%v", X)
	}
}
