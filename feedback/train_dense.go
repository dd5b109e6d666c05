// SPDX-License-Identifier: MIT
// Package: gotsetlin/feedback
//
// train_dense.go — the per-row training protocol against a
// densestate.Store: sample positive/negative classes, then gate every
// clause's feedback event by an independent PRNG draw.

package feedback

import (
	"github.com/notEloiir/gotsetlin/core"
	"github.com/notEloiir/gotsetlin/densestate"
	"github.com/notEloiir/gotsetlin/rng"
	"github.com/notEloiir/gotsetlin/vote"
)

// TrainRowClassIndexDense applies one row's feedback under class-index
// labeling: the positive class is exactly label; the negative
// class is sampled from the rest, weighted by clipped vote.
//
// clauseOutputs and votes must already hold this row's clause evaluation
// (skip_empty=false) and clipped vote sums.
func TrainRowClassIndexDense(store *densestate.Store, w *vote.Weights, X []uint8, label uint32, threshold uint32, clauseOutputs []uint8, votes []int32, d core.Derived, boost bool, r *rng.State) error {
	if err := validateRow(store.NumLiterals(), X); err != nil {
		return err
	}
	if err := validateBuffers(store.NumClauses(), w.NumClasses(), clauseOutputs, votes); err != nil {
		return err
	}
	if label >= w.NumClasses() {
		return ErrLabelOutOfRange
	}

	k := store.NumClauses()

	pPos := updateProbabilityPositive(votes[label], threshold)
	for c := uint32(0); c < k; c++ {
		if float64(r.NextFloat32()) <= pPos {
			ApplyDense(store, w, X, c, label, true, clauseOutputs[c], d, boost, r)
		}
	}

	negative, ok := classIndexNegative(label, w.NumClasses(), threshold, votes, r)
	if !ok {
		return nil
	}
	pNeg := updateProbabilityNegative(votes[negative], threshold)
	for c := uint32(0); c < k; c++ {
		if float64(r.NextFloat32()) <= pNeg {
			ApplyDense(store, w, X, c, negative, false, clauseOutputs[c], d, boost, r)
		}
	}

	return nil
}

// TrainRowBinaryVectorDense applies one row's feedback under binary-vector
// labeling: both the positive and negative classes are sampled from their
// respective label partitions, weighted by clipped vote. Either half is
// skipped (not an error) if its partition carries zero total weight.
func TrainRowBinaryVectorDense(store *densestate.Store, w *vote.Weights, X []uint8, labelVec []uint8, threshold uint32, clauseOutputs []uint8, votes []int32, d core.Derived, boost bool, r *rng.State) error {
	if err := validateRow(store.NumLiterals(), X); err != nil {
		return err
	}
	if err := validateBuffers(store.NumClauses(), w.NumClasses(), clauseOutputs, votes); err != nil {
		return err
	}
	if uint32(len(labelVec)) != w.NumClasses() {
		return ErrLabelVectorLengthMismatch
	}

	k := store.NumClauses()

	if positive, ok := binVectorPositive(labelVec, w.NumClasses(), threshold, votes, r); ok {
		pPos := updateProbabilityPositive(votes[positive], threshold)
		for c := uint32(0); c < k; c++ {
			if float64(r.NextFloat32()) <= pPos {
				ApplyDense(store, w, X, c, positive, true, clauseOutputs[c], d, boost, r)
			}
		}
	}

	if negative, ok := binVectorNegative(labelVec, w.NumClasses(), threshold, votes, r); ok {
		pNeg := updateProbabilityNegative(votes[negative], threshold)
		for c := uint32(0); c < k; c++ {
			if float64(r.NextFloat32()) <= pNeg {
				ApplyDense(store, w, X, c, negative, false, clauseOutputs[c], d, boost, r)
			}
		}
	}

	return nil
}
