// SPDX-License-Identifier: MIT
// Package: gotsetlin/core
//
// types.go — Params: the immutable hyperparameter set shared by every
// Tsetlin Machine representation, and the derived constants computed once
// at construction (mid_state, s_inv, s_m1_inv, sparse thresholds).
package core

import "fmt"

// Params holds the hyperparameters of a Tsetlin Machine. All fields are
// immutable once a machine is constructed; there is no supported way to
// resize NumClauses, NumLiterals or the state range after the fact:
// no online/incremental resizing is supported.
type Params struct {
	// NumClasses is the number of classes to predict. Must be >= 1.
	NumClasses uint32
	// NumClauses is the number of clauses per class-sharing ensemble. Must be >= 1.
	NumClauses uint32
	// NumLiterals is the number of input features (literals). Must be >= 1.
	NumLiterals uint32
	// Threshold clips summed votes to [-Threshold, Threshold]. Must be >= 1.
	Threshold uint32
	// MaxState is the upper bound of a Tsetlin Automaton's state, in [-128,127].
	MaxState int8
	// MinState is the lower bound of a Tsetlin Automaton's state, in [-128,127].
	// Must be strictly less than MaxState.
	MinState int8
	// BoostTruePositiveFeedback forces probability 1 (instead of s_m1_inv) for
	// Type Ia reinforcement of true-positive literals when true.
	BoostTruePositiveFeedback bool
	// S is the learning sensitivity, s > 1.0.
	S float64
}

// Derived holds the values computed once from Params at construction time:
// mid_state, s_inv, s_m1_inv, and (for sparse representations) the pruning
// and spawn thresholds.
type Derived struct {
	MidState        int8
	SInv            float64
	SM1Inv          float64
	SparseMinState  int8
	SparseInitState int8
}

// Validate checks the hyperparameter contract and returns a sentinel error
// (wrapped with %w at the call site is left to callers) describing the
// first violation found, in the order: classes, clauses, literals,
// threshold, state range, sensitivity.
//
// Complexity: O(1).
func (p Params) Validate() error {
	if p.NumClasses < 1 {
		return ErrTooFewClasses
	}
	if p.NumClauses < 1 {
		return ErrTooFewClauses
	}
	if p.NumLiterals < 1 {
		return ErrTooFewLiterals
	}
	if p.Threshold < 1 {
		return ErrBadThreshold
	}
	if p.MinState >= p.MaxState {
		return ErrBadStateRange
	}
	if p.S <= 1.0 {
		return ErrBadSensitivity
	}

	return nil
}

// Derive computes mid_state, s_inv, s_m1_inv and the sparse thresholds from
// p. Callers must call Validate first; Derive does not re-validate.
//
// mid_state truncates (max+min)/2 toward zero, matching Go's integer
// division semantics for int8 (equivalent to the C expression
// (max_state + min_state) / 2).
//
// Complexity: O(1).
func (p Params) Derive() Derived {
	mid := int8((int32(p.MaxState) + int32(p.MinState)) / 2)

	return Derived{
		MidState:        mid,
		SInv:            1.0 / p.S,
		SM1Inv:          (p.S - 1.0) / p.S,
		SparseMinState:  mid - 40,
		SparseInitState: mid - 40 + 5,
	}
}

// String renders Params for diagnostics and log lines in caller code; the
// engine itself never logs (see SPEC_FULL.md ambient stack: no internal
// logging).
func (p Params) String() string {
	return fmt.Sprintf(
		"Params{C=%d K=%d L=%d T=%d state=[%d,%d] boost=%t s=%.4f}",
		p.NumClasses, p.NumClauses, p.NumLiterals, p.Threshold,
		p.MinState, p.MaxState, p.BoostTruePositiveFeedback, p.S,
	)
}
