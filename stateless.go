// SPDX-License-Identifier: MIT
// stateless.go — StatelessMachine: the inference-only projection built
// from a trained dense or sparse machine. It carries only inclusion sets
// and weights, never automaton state — there is no Train method, by
// design: use NewStatelessFromDense/FromSparse (or the persist
// cross-loaders) to derive one.
package tsetlin

import (
	"io"

	"github.com/notEloiir/gotsetlin/activation"
	"github.com/notEloiir/gotsetlin/clause"
	"github.com/notEloiir/gotsetlin/core"
	"github.com/notEloiir/gotsetlin/persist"
	"github.com/notEloiir/gotsetlin/statelessstate"
	"github.com/notEloiir/gotsetlin/vote"
)

// StatelessMachine predicts using only inclusion sets and weights copied
// from a trained machine; it never runs feedback.
type StatelessMachine struct {
	params     core.Params
	derived    core.Derived
	outputMode OutputMode

	store   *statelessstate.Store
	weights *vote.Weights

	clauseOutputs []uint8
	votes         []int32
}

func newStateless(p core.Params, weights *vote.Weights, store *statelessstate.Store, outputMode OutputMode) *StatelessMachine {
	return &StatelessMachine{
		params: p, derived: p.Derive(), outputMode: outputMode,
		store: store, weights: weights,
		clauseOutputs: make([]uint8, p.NumClauses),
		votes:         make([]int32, p.NumClasses),
	}
}

// NewStatelessFromDense projects a trained DenseMachine into a stateless
// machine, keeping only automata with action=1.
func NewStatelessFromDense(m *DenseMachine, outputMode OutputMode) (*StatelessMachine, error) {
	store, err := statelessstate.FromDense(m.store)
	if err != nil {
		return nil, err
	}

	return newStateless(m.params, m.weights, store, outputMode), nil
}

// NewStatelessFromSparse projects a trained SparseMachine into a stateless
// machine, keeping only currently-included automata.
func NewStatelessFromSparse(m *SparseMachine, outputMode OutputMode) (*StatelessMachine, error) {
	store, err := statelessstate.FromSparse(m.store)
	if err != nil {
		return nil, err
	}

	return newStateless(m.params, m.weights, store, outputMode), nil
}

// Params returns the machine's hyperparameters.
func (m *StatelessMachine) Params() core.Params { return m.params }

func (m *StatelessMachine) predictRow(X []uint8) error {
	if err := clause.EvaluateAll(m.store, X, true, m.clauseOutputs); err != nil {
		return err
	}
	return vote.Sum(m.weights, m.clauseOutputs, m.params.Threshold, m.votes)
}

// PredictClassIndex predicts one class id per row of X.
func (m *StatelessMachine) PredictClassIndex(X [][]uint8) ([]uint32, error) {
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
func (m *StatelessMachine) PredictBinaryVector(X [][]uint8) ([][]uint8, error) {
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
func (m *StatelessMachine) EvaluateClassIndex(X [][]uint8, yTrue []uint32) (float64, error) {
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
func (m *StatelessMachine) EvaluateBinaryVector(X [][]uint8, yTrue [][]uint8) (float64, error) {
	pred, err := m.PredictBinaryVector(X)
	if err != nil {
		return 0, err
	}
	if len(pred) != len(yTrue) {
		return 0, ErrRowCountMismatch
	}

	return binaryVectorAccuracy(pred, yTrue), nil
}

// Save writes the machine's hyperparameters, weights, and inclusion sets
// to w in the stateless on-disk format.
func (m *StatelessMachine) Save(w io.Writer) error {
	return persist.SaveStateless(w, m.params, m.weights, m.store)
}

// LoadStateless reads a stateless machine back from r.
func LoadStateless(r io.Reader, outputMode OutputMode) (*StatelessMachine, error) {
	p, weights, store, err := persist.LoadStateless(r)
	if err != nil {
		return nil, err
	}

	return newStateless(p, weights, store, outputMode), nil
}

// LoadStatelessFromDense reads a dense-format file from r and materializes
// a stateless machine from it, keeping only cells with action=1.
func LoadStatelessFromDense(r io.Reader, outputMode OutputMode) (*StatelessMachine, error) {
	p, weights, store, err := persist.LoadStatelessFromDense(r)
	if err != nil {
		return nil, err
	}

	return newStateless(p, weights, store, outputMode), nil
}

