// SPDX-License-Identifier: MIT
// Package: gotsetlin/feedback
//
// train_sparse.go — the per-row training protocol against a
// sparsestate.Store, mirroring train_dense.go exactly except for the
// per-clause kernel dispatch.

package feedback

import (
	"github.com/notEloiir/gotsetlin/core"
	"github.com/notEloiir/gotsetlin/rng"
	"github.com/notEloiir/gotsetlin/sparsestate"
	"github.com/notEloiir/gotsetlin/vote"
)

// TrainRowClassIndexSparse is the sparse counterpart of TrainRowClassIndexDense.
func TrainRowClassIndexSparse(store *sparsestate.Store, w *vote.Weights, X []uint8, label uint32, threshold uint32, clauseOutputs []uint8, votes []int32, d core.Derived, boost bool, r *rng.State) error {
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
			ApplySparse(store, w, X, c, label, true, clauseOutputs[c], d, boost, r)
		}
	}

	negative, ok := classIndexNegative(label, w.NumClasses(), threshold, votes, r)
	if !ok {
		return nil
	}
	pNeg := updateProbabilityNegative(votes[negative], threshold)
	for c := uint32(0); c < k; c++ {
		if float64(r.NextFloat32()) <= pNeg {
			ApplySparse(store, w, X, c, negative, false, clauseOutputs[c], d, boost, r)
		}
	}

	return nil
}

// TrainRowBinaryVectorSparse is the sparse counterpart of
// TrainRowBinaryVectorDense.
func TrainRowBinaryVectorSparse(store *sparsestate.Store, w *vote.Weights, X []uint8, labelVec []uint8, threshold uint32, clauseOutputs []uint8, votes []int32, d core.Derived, boost bool, r *rng.State) error {
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
				ApplySparse(store, w, X, c, positive, true, clauseOutputs[c], d, boost, r)
			}
		}
	}

	if negative, ok := binVectorNegative(labelVec, w.NumClasses(), threshold, votes, r); ok {
		pNeg := updateProbabilityNegative(votes[negative], threshold)
		for c := uint32(0); c < k; c++ {
			if float64(r.NextFloat32()) <= pNeg {
				ApplySparse(store, w, X, c, negative, false, clauseOutputs[c], d, boost, r)
			}
		}
	}

	return nil
}
