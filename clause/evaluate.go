// SPDX-License-Identifier: MIT
// Package: gotsetlin/clause
//
// evaluate.go — Evaluate/EvaluateAll: clause activation for one input row.
// Grounded on calculate_clause_output in the original
// tsetlin_machine.c/sparse_tsetlin_machine.c, unified here across all three
// representations via the StateStore interface.

package clause

import "github.com/notEloiir/gotsetlin/core"

// StateStore is the minimal query surface clause evaluation needs. All
// three representation packages (densestate, sparsestate, statelessstate)
// implement it.
type StateStore interface {
	NumClauses() uint32
	NumLiterals() uint32
	// Inclusions calls yield(taID) for every included automaton of clause,
	// in ascending ta_id order, stopping early if yield returns false.
	Inclusions(clause uint32, yield func(taID uint32) bool)
}

// Evaluate computes the activation of a single clause against input row X.
//
// A clause is active (1) unless some included literal disagrees with X, in
// which case it is inactive (0). An empty clause (no included literals) is
// active by default during training (skipEmpty=false, so that Type Ia
// feedback can still reach it) and inactive during inference
// (skipEmpty=true).
//
// Complexity: O(n) where n is the clause's inclusion count.
func Evaluate(store StateStore, clauseID uint32, X []uint8, skipEmpty bool) uint8 {
	output := uint8(1)
	empty := true

	store.Inclusions(clauseID, func(taID uint32) bool {
		empty = false
		literal, polarity := core.SplitTAID(taID)
		if polarity == X[literal] {
			output = 0
			return false
		}
		return true
	})

	if empty && skipEmpty {
		return 0
	}

	return output
}

// EvaluateAll computes the activation of every clause in store against X,
// writing results into out. len(X) must equal store.NumLiterals() and
// len(out) must equal store.NumClauses().
//
// Complexity: O(k + total inclusion count).
func EvaluateAll(store StateStore, X []uint8, skipEmpty bool, out []uint8) error {
	if uint32(len(X)) != store.NumLiterals() {
		return ErrRowLengthMismatch
	}
	if uint32(len(out)) != store.NumClauses() {
		return ErrOutputLengthMismatch
	}

	for c := uint32(0); c < store.NumClauses(); c++ {
		out[c] = Evaluate(store, c, X, skipEmpty)
	}

	return nil
}
