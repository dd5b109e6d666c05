// SPDX-License-Identifier: MIT
// sparse.go — SparseMachine: a Tsetlin Machine backed by the growable,
// prunable sparse automaton store.
package tsetlin

import (
	"io"

	"github.com/notEloiir/gotsetlin/activation"
	"github.com/notEloiir/gotsetlin/clause"
	"github.com/notEloiir/gotsetlin/core"
	"github.com/notEloiir/gotsetlin/feedback"
	"github.com/notEloiir/gotsetlin/persist"
	"github.com/notEloiir/gotsetlin/rng"
	"github.com/notEloiir/gotsetlin/sparsestate"
	"github.com/notEloiir/gotsetlin/vote"
)

// SparseMachine is a Tsetlin Machine backed by sparsestate.Store: clauses
// start with no tracked automata and grow/prune during training.
type SparseMachine struct {
	params     core.Params
	derived    core.Derived
	labelMode  LabelMode
	outputMode OutputMode

	store   *sparsestate.Store
	weights *vote.Weights
	rng     *rng.State

	clauseOutputs []uint8
	votes         []int32
}

// NewSparse validates p, then constructs a sparse machine with a fresh
// PRNG seeded by seed, empty clauses, and randomly initialized weights.
func NewSparse(p core.Params, labelMode LabelMode, outputMode OutputMode, seed uint32) (*SparseMachine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	d := p.Derive()
	r := rng.New(seed)

	store, err := sparsestate.New(p.NumClauses, p.NumLiterals, p.NumClasses, p.MaxState, p.MinState, d.MidState, d.SparseMinState, d.SparseInitState)
	if err != nil {
		return nil, err
	}
	weights, err := vote.NewWeights(p.NumClauses, p.NumClasses, r)
	if err != nil {
		return nil, err
	}

	return &SparseMachine{
		params: p, derived: d, labelMode: labelMode, outputMode: outputMode,
		store: store, weights: weights, rng: r,
		clauseOutputs: make([]uint8, p.NumClauses),
		votes:         make([]int32, p.NumClasses),
	}, nil
}

// Params returns the machine's hyperparameters.
func (m *SparseMachine) Params() core.Params { return m.params }

func (m *SparseMachine) evaluateAndVote(X []uint8) error {
	if err := clause.EvaluateAll(m.store, X, false, m.clauseOutputs); err != nil {
		return err
	}
	return vote.Sum(m.weights, m.clauseOutputs, m.params.Threshold, m.votes)
}

// TrainClassIndex trains the machine for epochs passes over X/y under
// class-index labeling.
func (m *SparseMachine) TrainClassIndex(X [][]uint8, y []uint32, epochs uint32) error {
	if m.labelMode != ClassIndexLabels {
		return ErrWrongLabelMode
	}
	if len(X) != len(y) {
		return ErrRowCountMismatch
	}
	if epochs < 1 {
		return ErrNoEpochs
	}

	for e := uint32(0); e < epochs; e++ {
		for i := range X {
			if err := m.evaluateAndVote(X[i]); err != nil {
				return err
			}
			if err := feedback.TrainRowClassIndexSparse(m.store, m.weights, X[i], y[i], m.params.Threshold, m.clauseOutputs, m.votes, m.derived, m.params.BoostTruePositiveFeedback, m.rng); err != nil {
				return err
			}
		}
	}

	return nil
}

// TrainBinaryVector trains the machine for epochs passes over X/y under
// binary-vector labeling.
func (m *SparseMachine) TrainBinaryVector(X [][]uint8, y [][]uint8, epochs uint32) error {
	if m.labelMode != BinaryVectorLabels {
		return ErrWrongLabelMode
	}
	if len(X) != len(y) {
		return ErrRowCountMismatch
	}
	if epochs < 1 {
		return ErrNoEpochs
	}

	for e := uint32(0); e < epochs; e++ {
		for i := range X {
			if err := m.evaluateAndVote(X[i]); err != nil {
				return err
			}
			if err := feedback.TrainRowBinaryVectorSparse(m.store, m.weights, X[i], y[i], m.params.Threshold, m.clauseOutputs, m.votes, m.derived, m.params.BoostTruePositiveFeedback, m.rng); err != nil {
				return err
			}
		}
	}

	return nil
}

func (m *SparseMachine) predictRow(X []uint8) error {
	if err := clause.EvaluateAll(m.store, X, true, m.clauseOutputs); err != nil {
		return err
	}
	return vote.Sum(m.weights, m.clauseOutputs, m.params.Threshold, m.votes)
}

// PredictClassIndex predicts one class id per row of X.
func (m *SparseMachine) PredictClassIndex(X [][]uint8) ([]uint32, error) {
	if m.outputMode != ClassIndexOutput {
		return nil, ErrWrongOutputMode
	}

	out := make([]uint32, len(X))
	for i := range X {
		if err := m.predictRow(X[i]); err != nil {
			return nil, err
		}
		row := out[i : i+1]
		if err := activation.ClassIndexOutput(m.votes, row); err != nil {
			return nil, err
		}
		out[i] = row[0]
	}

	return out, nil
}

// PredictBinaryVector predicts one label bit per class per row of X.
func (m *SparseMachine) PredictBinaryVector(X [][]uint8) ([][]uint8, error) {
	if m.outputMode != BinaryVectorOutput {
		return nil, ErrWrongOutputMode
	}

	out := make([][]uint8, len(X))
	for i := range X {
		if err := m.predictRow(X[i]); err != nil {
			return nil, err
		}
		row := make([]uint8, m.params.NumClasses)
		if err := activation.BinaryVectorOutput(m.votes, m.derived.MidState, row); err != nil {
			return nil, err
		}
		out[i] = row
	}

	return out, nil
}

// EvaluateClassIndex predicts X and returns the fraction of rows whose
// predicted class equals yTrue.
func (m *SparseMachine) EvaluateClassIndex(X [][]uint8, yTrue []uint32) (float64, error) {
	pred, err := m.PredictClassIndex(X)
	if err != nil {
		return 0, err
	}
	if len(pred) != len(yTrue) {
		return 0, ErrRowCountMismatch
	}

	return classIndexAccuracy(pred, yTrue), nil
}

// EvaluateBinaryVector predicts X and returns the fraction of rows whose
// predicted label vector equals yTrue element-wise.
func (m *SparseMachine) EvaluateBinaryVector(X [][]uint8, yTrue [][]uint8) (float64, error) {
	pred, err := m.PredictBinaryVector(X)
	if err != nil {
		return 0, err
	}
	if len(pred) != len(yTrue) {
		return 0, ErrRowCountMismatch
	}

	return binaryVectorAccuracy(pred, yTrue), nil
}

// Save writes the machine's hyperparameters, weights, and tracked automata
// to w in the sparse on-disk format.
func (m *SparseMachine) Save(w io.Writer) error {
	return persist.SaveSparse(w, m.params, m.weights, m.store)
}

// LoadSparse reads a sparse machine back from r. seed re-seeds the PRNG
// for any further training.
func LoadSparse(r io.Reader, labelMode LabelMode, outputMode OutputMode, seed uint32) (*SparseMachine, error) {
	p, weights, store, err := persist.LoadSparse(r)
	if err != nil {
		return nil, err
	}

	return &SparseMachine{
		params: p, derived: p.Derive(), labelMode: labelMode, outputMode: outputMode,
		store: store, weights: weights, rng: rng.New(seed),
		clauseOutputs: make([]uint8, p.NumClauses),
		votes:         make([]int32, p.NumClasses),
	}, nil
}

// LoadSparseFromDense reads a dense-format file from r and materializes a
// sparse machine from it, keeping only cells with action=1.
func LoadSparseFromDense(r io.Reader, labelMode LabelMode, outputMode OutputMode, seed uint32) (*SparseMachine, error) {
	p, weights, store, err := persist.LoadSparseFromDense(r)
	if err != nil {
		return nil, err
	}

	return &SparseMachine{
		params: p, derived: p.Derive(), labelMode: labelMode, outputMode: outputMode,
		store: store, weights: weights, rng: rng.New(seed),
		clauseOutputs: make([]uint8, p.NumClauses),
		votes:         make([]int32, p.NumClasses),
	}, nil
}
