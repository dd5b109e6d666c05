// SPDX-License-Identifier: MIT
// dense.go — DenseMachine: the canonical, fully trainable Tsetlin Machine
// over a dense automaton store.
package tsetlin

import (
	"io"

	"github.com/notEloiir/gotsetlin/activation"
	"github.com/notEloiir/gotsetlin/clause"
	"github.com/notEloiir/gotsetlin/core"
	"github.com/notEloiir/gotsetlin/densestate"
	"github.com/notEloiir/gotsetlin/feedback"
	"github.com/notEloiir/gotsetlin/persist"
	"github.com/notEloiir/gotsetlin/rng"
	"github.com/notEloiir/gotsetlin/vote"
)

// DenseMachine is a Tsetlin Machine backed by densestate.Store: every
// automaton exists from construction, trainable in place.
type DenseMachine struct {
	params     core.Params
	derived    core.Derived
	labelMode  LabelMode
	outputMode OutputMode

	store   *densestate.Store
	weights *vote.Weights
	rng     *rng.State

	clauseOutputs []uint8
	votes         []int32
}

// NewDense validates p, then constructs a dense machine with a fresh PRNG
// seeded by seed and randomly initialized automaton states and weights.
func NewDense(p core.Params, labelMode LabelMode, outputMode OutputMode, seed uint32) (*DenseMachine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	d := p.Derive()
	r := rng.New(seed)

	store, err := densestate.New(p.NumClauses, p.NumLiterals, p.MaxState, p.MinState, d.MidState, r)
	if err != nil {
		return nil, err
	}
	weights, err := vote.NewWeights(p.NumClauses, p.NumClasses, r)
	if err != nil {
		return nil, err
	}

	return &DenseMachine{
		params: p, derived: d, labelMode: labelMode, outputMode: outputMode,
		store: store, weights: weights, rng: r,
		clauseOutputs: make([]uint8, p.NumClauses),
		votes:         make([]int32, p.NumClasses),
	}, nil
}

// Params returns the machine's hyperparameters.
func (m *DenseMachine) Params() core.Params { return m.params }

// evaluateAndVote runs clause evaluation (skipEmpty=false, the training
// shape) and vote summation for one row into m's scratch buffers.
func (m *DenseMachine) evaluateAndVote(X []uint8) error {
	if err := clause.EvaluateAll(m.store, X, false, m.clauseOutputs); err != nil {
		return err
	}
	return vote.Sum(m.weights, m.clauseOutputs, m.params.Threshold, m.votes)
}

// TrainClassIndex trains the machine for epochs passes over X/y under
// class-index labeling, iterating epochs outer and rows inner in the given
// order (no shuffling: a deterministic PRNG fully determines the
// trajectory).
func (m *DenseMachine) TrainClassIndex(X [][]uint8, y []uint32, epochs uint32) error {
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
			if err := feedback.TrainRowClassIndexDense(m.store, m.weights, X[i], y[i], m.params.Threshold, m.clauseOutputs, m.votes, m.derived, m.params.BoostTruePositiveFeedback, m.rng); err != nil {
				return err
			}
		}
	}

	return nil
}

// TrainBinaryVector trains the machine for epochs passes over X/y under
// binary-vector labeling.
func (m *DenseMachine) TrainBinaryVector(X [][]uint8, y [][]uint8, epochs uint32) error {
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
			if err := feedback.TrainRowBinaryVectorDense(m.store, m.weights, X[i], y[i], m.params.Threshold, m.clauseOutputs, m.votes, m.derived, m.params.BoostTruePositiveFeedback, m.rng); err != nil {
				return err
			}
		}
	}

	return nil
}

// predictRow evaluates clauses with skipEmpty=true (the inference shape)
// and sums votes for one row.
func (m *DenseMachine) predictRow(X []uint8) error {
	if err := clause.EvaluateAll(m.store, X, true, m.clauseOutputs); err != nil {
		return err
	}
	return vote.Sum(m.weights, m.clauseOutputs, m.params.Threshold, m.votes)
}

// PredictClassIndex predicts one class id per row of X.
func (m *DenseMachine) PredictClassIndex(X [][]uint8) ([]uint32, error) {
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
func (m *DenseMachine) PredictBinaryVector(X [][]uint8) ([][]uint8, error) {
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
func (m *DenseMachine) EvaluateClassIndex(X [][]uint8, yTrue []uint32) (float64, error) {
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
func (m *DenseMachine) EvaluateBinaryVector(X [][]uint8, yTrue [][]uint8) (float64, error) {
	pred, err := m.PredictBinaryVector(X)
	if err != nil {
		return 0, err
	}
	if len(pred) != len(yTrue) {
		return 0, ErrRowCountMismatch
	}

	return binaryVectorAccuracy(pred, yTrue), nil
}

// Save writes the machine's hyperparameters, weights, and automaton state
// to w in the dense on-disk format.
func (m *DenseMachine) Save(w io.Writer) error {
	return persist.SaveDense(w, m.params, m.weights, m.store)
}

// LoadDense reads a dense machine back from r. seed re-seeds the PRNG for
// any further training; a freshly loaded machine used only for inference
// can pass any value.
func LoadDense(r io.Reader, labelMode LabelMode, outputMode OutputMode, seed uint32) (*DenseMachine, error) {
	p, weights, store, err := persist.LoadDense(r)
	if err != nil {
		return nil, err
	}

	return &DenseMachine{
		params: p, derived: p.Derive(), labelMode: labelMode, outputMode: outputMode,
		store: store, weights: weights, rng: rng.New(seed),
		clauseOutputs: make([]uint8, p.NumClauses),
		votes:         make([]int32, p.NumClasses),
	}, nil
}
