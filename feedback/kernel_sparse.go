// SPDX-License-Identifier: MIT
// Package: gotsetlin/feedback
//
// kernel_sparse.go — Type Ia/Ib/II feedback against a sparsestate.Store.
// Grounded on the same three functions in sparse_tsetlin_machine.c, with
// the singly linked TAStateNode cursor replaced by an integer index into
// the clause's ordered entry slice; idx only advances past a ta_id once
// that position has been examined (matching the original's
// prev_state_ptr/state_ptr advance, which is skipped by every early
// `continue`).

package feedback

import (
	"github.com/notEloiir/gotsetlin/core"
	"github.com/notEloiir/gotsetlin/rng"
	"github.com/notEloiir/gotsetlin/sparsestate"
	"github.com/notEloiir/gotsetlin/vote"
)

// Type1aSparse is the sparse counterpart of Type1aDense. For literals with
// no materialized TA, it only records active-literal eligibility, a
// sparse-only side effect — materialization happens exclusively under
// Type II.
func Type1aSparse(store *sparsestate.Store, w *vote.Weights, X []uint8, clauseID, classID uint32, d core.Derived, boost bool, r *rng.State) {
	reinforceWeight(w, clauseID, classID)

	l := store.NumLiterals()
	idx := 0
	for taID := uint32(0); taID < 2*l; taID++ {
		lit, pol := core.SplitTAID(taID)

		if idx >= store.Len(clauseID) || store.At(clauseID, idx).TAID != taID {
			if pol == 0 && X[lit] == 1 && !store.ActiveLiteral(classID, lit) {
				store.SetActiveLiteral(classID, lit)
			}
			continue
		}

		state := store.At(clauseID, idx).State
		literalTrue := pol != X[lit]

		if literalTrue {
			apply := boost
			if !boost {
				apply = float64(r.NextFloat32()) <= d.SM1Inv
			}
			if apply {
				state = core.ClampInt8(int32(state)+1, store.MinState(), store.MaxState())
			}
		} else if float64(r.NextFloat32()) <= d.SInv {
			state = core.ClampInt8(int32(state)-1, store.MinState(), store.MaxState())
		}

		if state < store.SparseMinState() {
			store.RemoveAt(clauseID, idx)
			continue
		}

		store.SetStateAt(clauseID, idx, state)
		idx++
	}
}

// Type1bSparse is the sparse counterpart of Type1bDense: punish every
// materialized TA, pruning any that fall below sparse_min_state.
func Type1bSparse(store *sparsestate.Store, clauseID uint32, d core.Derived, r *rng.State) {
	l := store.NumLiterals()
	idx := 0
	for taID := uint32(0); taID < 2*l; taID++ {
		if idx >= store.Len(clauseID) || store.At(clauseID, idx).TAID != taID {
			continue
		}

		state := store.At(clauseID, idx).State
		if float64(r.NextFloat32()) <= d.SInv {
			state = core.ClampInt8(int32(state)-1, store.MinState(), store.MaxState())
		}

		if state < store.SparseMinState() {
			store.RemoveAt(clauseID, idx)
			continue
		}

		store.SetStateAt(clauseID, idx, state)
		idx++
	}
}

// Type2Sparse is the sparse counterpart of Type2Dense. A non-materialized
// TA is treated as excluded; if the predicate (p == X[l]) fires and the
// class's active-literal bit for l is set, a new entry is spawned at
// sparse_init_state.
func Type2Sparse(store *sparsestate.Store, w *vote.Weights, X []uint8, clauseID, classID uint32, d core.Derived) {
	penalizeWeight(w, clauseID, classID)

	l := store.NumLiterals()
	idx := 0
	for taID := uint32(0); taID < 2*l; taID++ {
		lit, pol := core.SplitTAID(taID)

		if idx >= store.Len(clauseID) || store.At(clauseID, idx).TAID != taID {
			if pol == uint8(X[lit]) && store.ActiveLiteral(classID, lit) {
				if err := store.InsertAt(clauseID, idx, taID, store.SparseInitState()); err == nil {
					idx++
				}
			}
			continue
		}

		state := store.At(clauseID, idx).State
		excluded := core.Action(state, store.MidState()) == 0
		if excluded && pol == X[lit] {
			state = core.ClampInt8(int32(state)+1, store.MinState(), store.MaxState())
			store.SetStateAt(clauseID, idx, state)
		}
		idx++
	}
}

// ApplySparse dispatches one (clauseID, classID) feedback event, the sparse
// counterpart of ApplyDense.
func ApplySparse(store *sparsestate.Store, w *vote.Weights, X []uint8, clauseID, classID uint32, isPositive bool, clauseOutput uint8, d core.Derived, boost bool, r *rng.State) {
	voteSign := w.Get(clauseID, classID) >= 0

	switch {
	case voteSign == isPositive && clauseOutput == 1:
		Type1aSparse(store, w, X, clauseID, classID, d, boost, r)
	case voteSign == isPositive && clauseOutput == 0:
		Type1bSparse(store, clauseID, d, r)
	case voteSign != isPositive && clauseOutput == 1:
		Type2Sparse(store, w, X, clauseID, classID, d)
	}
}
