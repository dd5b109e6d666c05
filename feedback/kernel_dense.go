// SPDX-License-Identifier: MIT
// Package: gotsetlin/feedback
//
// kernel_dense.go — Type Ia/Ib/II feedback against a densestate.Store.
// Grounded on type_1a_feedback/type_1b_feedback/type_2_feedback in
// tsetlin_machine.c.

package feedback

import (
	"github.com/notEloiir/gotsetlin/core"
	"github.com/notEloiir/gotsetlin/densestate"
	"github.com/notEloiir/gotsetlin/rng"
	"github.com/notEloiir/gotsetlin/vote"
)

// reinforceWeight moves w[clauseID,classID] away from zero by 1, saturating.
func reinforceWeight(w *vote.Weights, clauseID, classID uint32) {
	if w.Get(clauseID, classID) >= 0 {
		w.Add(clauseID, classID, 1)
	} else {
		w.Add(clauseID, classID, -1)
	}
}

// penalizeWeight moves w[clauseID,classID] toward zero by 1, saturating.
func penalizeWeight(w *vote.Weights, clauseID, classID uint32) {
	if w.Get(clauseID, classID) >= 0 {
		w.Add(clauseID, classID, -1)
	} else {
		w.Add(clauseID, classID, 1)
	}
}

// Type1aDense reinforces clause clauseID toward class classID: the weight
// moves away from zero, and every included-or-not TA is nudged toward
// matching X, with boost_true_positive_feedback forcing probability 1 (no
// PRNG draw, matching the original's short-circuit `||`) for true-positive
// reinforcement.
func Type1aDense(store *densestate.Store, w *vote.Weights, X []uint8, clauseID, classID uint32, d core.Derived, boost bool, r *rng.State) {
	reinforceWeight(w, clauseID, classID)

	l := store.NumLiterals()
	for lit := uint32(0); lit < l; lit++ {
		for pol := uint8(0); pol < 2; pol++ {
			state := store.State(clauseID, lit, pol)
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

			store.SetState(clauseID, lit, pol, state)
		}
	}
}

// Type1bDense penalizes every TA of clauseID toward exclusion, with no
// weight change — the clause "looks for something else to do".
func Type1bDense(store *densestate.Store, clauseID uint32, d core.Derived, r *rng.State) {
	l := store.NumLiterals()
	for lit := uint32(0); lit < l; lit++ {
		for pol := uint8(0); pol < 2; pol++ {
			state := store.State(clauseID, lit, pol)
			if float64(r.NextFloat32()) <= d.SInv {
				state = core.ClampInt8(int32(state)-1, store.MinState(), store.MaxState())
			}
			store.SetState(clauseID, lit, pol, state)
		}
	}
}

// Type2Dense penalizes the weight toward zero and raises any excluded TA
// whose inclusion would have deactivated the clause on X, deterministically
// (no PRNG draw — the predicate alone gates the increment).
func Type2Dense(store *densestate.Store, w *vote.Weights, X []uint8, clauseID, classID uint32, d core.Derived) {
	penalizeWeight(w, clauseID, classID)

	l := store.NumLiterals()
	for lit := uint32(0); lit < l; lit++ {
		for pol := uint8(0); pol < 2; pol++ {
			state := store.State(clauseID, lit, pol)
			excluded := core.Action(state, store.MidState()) == 0
			if excluded && pol == X[lit] {
				state = core.ClampInt8(int32(state)+1, store.MinState(), store.MaxState())
				store.SetState(clauseID, lit, pol, state)
			}
		}
	}
}

// ApplyDense dispatches one (clauseID, classID) feedback event: the
// vote-sign/is-positive/clause-output triple selects Type Ia, Ib, II, or
// nothing.
func ApplyDense(store *densestate.Store, w *vote.Weights, X []uint8, clauseID, classID uint32, isPositive bool, clauseOutput uint8, d core.Derived, boost bool, r *rng.State) {
	voteSign := w.Get(clauseID, classID) >= 0

	switch {
	case voteSign == isPositive && clauseOutput == 1:
		Type1aDense(store, w, X, clauseID, classID, d, boost, r)
	case voteSign == isPositive && clauseOutput == 0:
		Type1bDense(store, clauseID, d, r)
	case voteSign != isPositive && clauseOutput == 1:
		Type2Dense(store, w, X, clauseID, classID, d)
	}
}
