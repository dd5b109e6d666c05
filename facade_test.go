// Package tsetlin_test exercises the dense/sparse/stateless façades,
// including the literal fixed-clause scenarios.
package tsetlin_test

import (
	"bytes"
	"testing"

	"github.com/notEloiir/gotsetlin"
	"github.com/notEloiir/gotsetlin/core"
	"github.com/notEloiir/gotsetlin/densestate"
	"github.com/notEloiir/gotsetlin/persist"
	"github.com/notEloiir/gotsetlin/rng"
	"github.com/notEloiir/gotsetlin/vote"
	"github.com/stretchr/testify/require"
)

// fixedDenseMachine serializes a 1-clause, 3-literal dense machine with the
// given ta_state and single-class weight, then loads it back through the
// façade — the only way to inject fixed automaton state without exposing
// unexported fields.
func fixedDenseMachine(t *testing.T, p core.Params, states []int8, weight int16, labelMode tsetlin.LabelMode, outputMode tsetlin.OutputMode, seed uint32) *tsetlin.DenseMachine {
	t.Helper()

	d := p.Derive()
	store, err := densestate.NewFromStates(p.NumClauses, p.NumLiterals, p.MaxState, p.MinState, d.MidState, states)
	require.NoError(t, err)
	w, err := vote.NewWeights(p.NumClauses, p.NumClasses, rng.New(seed))
	require.NoError(t, err)
	w.Set(0, 0, weight)

	var buf bytes.Buffer
	require.NoError(t, persist.SaveDense(&buf, p, w, store))

	m, err := tsetlin.LoadDense(&buf, labelMode, outputMode, seed)
	require.NoError(t, err)

	return m
}

func TestFixedClauseInferenceBinaryVector(t *testing.T) {
	p := core.Params{
		NumClasses: 1, NumClauses: 1, NumLiterals: 3, Threshold: 100,
		MaxState: 127, MinState: -127, S: 10,
	}
	m := fixedDenseMachine(t, p, []int8{1, -1, -1, 1, -1, -1}, 1, tsetlin.ClassIndexLabels, tsetlin.BinaryVectorOutput, 42)

	pred, err := m.PredictBinaryVector([][]uint8{{1, 0, 1}})
	require.NoError(t, err)
	require.Equal(t, [][]uint8{{1}}, pred)
}

func TestOneSampleTrainingReversesPrediction(t *testing.T) {
	p := core.Params{
		NumClasses: 1, NumClauses: 1, NumLiterals: 3, Threshold: 100,
		MaxState: 127, MinState: -127, S: 10,
	}
	m := fixedDenseMachine(t, p, []int8{1, -1, -1, 1, -1, -1}, 1, tsetlin.BinaryVectorLabels, tsetlin.BinaryVectorOutput, 42)

	X := [][]uint8{{1, 0, 1}}
	before, err := m.PredictBinaryVector(X)
	require.NoError(t, err)
	require.Equal(t, [][]uint8{{1}}, before)

	require.NoError(t, m.TrainBinaryVector(X, [][]uint8{{0}}, 10))

	after, err := m.PredictBinaryVector(X)
	require.NoError(t, err)
	require.Equal(t, [][]uint8{{0}}, after)
}

func TestWrongLabelModeRejected(t *testing.T) {
	p := core.Params{
		NumClasses: 2, NumClauses: 4, NumLiterals: 3, Threshold: 10,
		MaxState: 127, MinState: -127, S: 3.0,
	}
	m, err := tsetlin.NewDense(p, tsetlin.ClassIndexLabels, tsetlin.ClassIndexOutput, 1)
	require.NoError(t, err)

	err = m.TrainBinaryVector([][]uint8{{1, 0, 1}}, [][]uint8{{1, 0}}, 1)
	require.ErrorIs(t, err, tsetlin.ErrWrongLabelMode)

	_, err = m.PredictBinaryVector([][]uint8{{1, 0, 1}})
	require.ErrorIs(t, err, tsetlin.ErrWrongOutputMode)
}

func TestDenseTrainPredictEvaluateRoundTrip(t *testing.T) {
	p := core.Params{
		NumClasses: 2, NumClauses: 10, NumLiterals: 4, Threshold: 15,
		MaxState: 127, MinState: -127, S: 3.0,
	}
	m, err := tsetlin.NewDense(p, tsetlin.ClassIndexLabels, tsetlin.ClassIndexOutput, 7)
	require.NoError(t, err)

	X := [][]uint8{{1, 0, 0, 1}, {0, 1, 1, 0}}
	y := []uint32{0, 1}
	require.NoError(t, m.TrainClassIndex(X, y, 5))

	pred, err := m.PredictClassIndex(X)
	require.NoError(t, err)
	require.Len(t, pred, 2)

	acc, err := m.EvaluateClassIndex(X, y)
	require.NoError(t, err)
	require.GreaterOrEqual(t, acc, 0.0)
	require.LessOrEqual(t, acc, 1.0)
}

func TestSparseTrainGrowsAndPredicts(t *testing.T) {
	p := core.Params{
		NumClasses: 2, NumClauses: 10, NumLiterals: 4, Threshold: 15,
		MaxState: 127, MinState: -127, S: 3.0,
	}
	m, err := tsetlin.NewSparse(p, tsetlin.ClassIndexLabels, tsetlin.ClassIndexOutput, 7)
	require.NoError(t, err)

	X := [][]uint8{{1, 0, 0, 1}, {0, 1, 1, 0}}
	y := []uint32{0, 1}
	require.NoError(t, m.TrainClassIndex(X, y, 5))

	// Clauses start empty; training must have materialized some automata.
	var buf bytes.Buffer
	require.NoError(t, m.Save(&buf))
	_, _, store, err := persist.LoadSparse(&buf)
	require.NoError(t, err)
	tracked := 0
	for c := uint32(0); c < p.NumClauses; c++ {
		tracked += store.Len(c)
	}
	require.True(t, tracked > 0)

	pred, err := m.PredictClassIndex(X)
	require.NoError(t, err)
	require.Len(t, pred, 2)
}

func TestStatelessFromDenseMatchesDensePredictions(t *testing.T) {
	p := core.Params{
		NumClasses: 2, NumClauses: 10, NumLiterals: 4, Threshold: 15,
		MaxState: 127, MinState: -127, S: 3.0,
	}
	m, err := tsetlin.NewDense(p, tsetlin.ClassIndexLabels, tsetlin.ClassIndexOutput, 3)
	require.NoError(t, err)

	X := [][]uint8{{1, 0, 0, 1}, {0, 1, 1, 0}, {1, 1, 0, 0}}
	y := []uint32{0, 1, 0}
	require.NoError(t, m.TrainClassIndex(X, y, 3))

	densePred, err := m.PredictClassIndex(X)
	require.NoError(t, err)

	stateless, err := tsetlin.NewStatelessFromDense(m, tsetlin.ClassIndexOutput)
	require.NoError(t, err)

	statelessPred, err := stateless.PredictClassIndex(X)
	require.NoError(t, err)

	require.Equal(t, densePred, statelessPred)
}

func TestSaveLoadDenseFacadeRoundTrip(t *testing.T) {
	p := core.Params{
		NumClasses: 2, NumClauses: 6, NumLiterals: 3, Threshold: 10,
		MaxState: 127, MinState: -127, S: 3.0,
	}
	m, err := tsetlin.NewDense(p, tsetlin.ClassIndexLabels, tsetlin.ClassIndexOutput, 9)
	require.NoError(t, err)

	X := [][]uint8{{1, 0, 1}, {0, 1, 0}}
	require.NoError(t, m.TrainClassIndex(X, []uint32{0, 1}, 2))

	want, err := m.PredictClassIndex(X)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.Save(&buf))

	loaded, err := tsetlin.LoadDense(&buf, tsetlin.ClassIndexLabels, tsetlin.ClassIndexOutput, 1)
	require.NoError(t, err)

	got, err := loaded.PredictClassIndex(X)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
