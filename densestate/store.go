// SPDX-License-Identifier: MIT
// Package: gotsetlin/densestate
//
// store.go — Store: the dense (clause, literal, polarity) -> int8 automaton
// matrix. Grounded on a row-major flat-slice Dense matrix layout
// (matrix.Dense: bounds-checked At/Set over a single []float64), adapted
// here to a fixed three-dimensional int8 layout with Tsetlin Automaton
// semantics instead of graph adjacency weights.

package densestate

import (
	"github.com/notEloiir/gotsetlin/core"
	"github.com/notEloiir/gotsetlin/rng"
)

// Store is a dense automaton state store: every (clause, literal, polarity)
// cell exists from construction. Index formula: (((clause*L)+literal)*2)+polarity.
type Store struct {
	k, l     uint32
	maxState int8
	minState int8
	midState int8
	states   []int8 // len k*l*2, row-major
}

// New allocates a dense store of shape (k, l, 2) and randomly initializes
// it: for each (clause, literal), a fair PRNG coin toss sets either
// (positive, negative) = (mid-1, mid) or (mid, mid-1) — a 50/50 mix of
// marginally-included literals at the inclusion boundary.
//
// Complexity: O(k*l) time and memory.
func New(k, l uint32, maxState, minState, midState int8, r *rng.State) (*Store, error) {
	if k < 1 || l < 1 {
		return nil, ErrInvalidShape
	}

	s := &Store{
		k: k, l: l,
		maxState: maxState, minState: minState, midState: midState,
		states: make([]int8, k*l*2),
	}
	s.randomize(r)

	return s, nil
}

// randomize performs the coin-flip initialization of every clause/literal
// pair, consuming exactly one PRNG float per (clause, literal) in ascending
// (clause, literal) order.
func (s *Store) randomize(r *rng.State) {
	for c := uint32(0); c < s.k; c++ {
		for lit := uint32(0); lit < s.l; lit++ {
			base := (c*s.l + lit) * 2
			if r.NextFloat32() <= 0.5 {
				s.states[base+0] = s.midState - 1
				s.states[base+1] = s.midState
			} else {
				s.states[base+0] = s.midState
				s.states[base+1] = s.midState - 1
			}
		}
	}
}

// NewFromStates allocates a dense store of shape (k, l, 2) and loads it
// directly from states, skipping randomization — used by persist to
// materialize a store read from a model file.
func NewFromStates(k, l uint32, maxState, minState, midState int8, states []int8) (*Store, error) {
	if k < 1 || l < 1 {
		return nil, ErrInvalidShape
	}

	s := &Store{
		k: k, l: l,
		maxState: maxState, minState: minState, midState: midState,
		states: make([]int8, k*l*2),
	}
	if err := s.LoadStates(states); err != nil {
		return nil, err
	}

	return s, nil
}

// NumClauses returns k.
func (s *Store) NumClauses() uint32 { return s.k }

// NumLiterals returns l.
func (s *Store) NumLiterals() uint32 { return s.l }

// MidState returns the derived mid_state boundary.
func (s *Store) MidState() int8 { return s.midState }

// MaxState returns the configured upper state bound.
func (s *Store) MaxState() int8 { return s.maxState }

// MinState returns the configured lower state bound.
func (s *Store) MinState() int8 { return s.minState }

// idx computes the flat offset for (clause, literal, polarity). Callers
// (package-internal) are trusted to pass valid indices; out-of-range access
// from the feedback engine or evaluator would be a programmer error, not a
// runtime data condition, so this helper does not return an error (mirrors
// a private indexOf helper, but dense TM hot paths never see untrusted
// indices post-construction).
func (s *Store) idx(clause, literal uint32, polarity uint8) uint32 {
	return ((clause*s.l)+literal)*2 + uint32(polarity)
}

// State returns the raw automaton state at (clause, literal, polarity).
//
// Complexity: O(1).
func (s *Store) State(clause, literal uint32, polarity uint8) int8 {
	return s.states[s.idx(clause, literal, polarity)]
}

// SetState writes the raw automaton state at (clause, literal, polarity),
// without saturation — callers (feedback kernels, persistence loader) are
// responsible for clamping.
//
// Complexity: O(1).
func (s *Store) SetState(clause, literal uint32, polarity uint8, state int8) {
	s.states[s.idx(clause, literal, polarity)] = state
}

// Action reports whether the automaton at (clause, literal, polarity) is
// currently included (1) or excluded (0).
//
// Complexity: O(1).
func (s *Store) Action(clause, literal uint32, polarity uint8) uint8 {
	return core.Action(s.State(clause, literal, polarity), s.midState)
}

// ActionTA is Action addressed by flat ta_id = 2*literal+polarity.
//
// Complexity: O(1).
func (s *Store) ActionTA(clause, taID uint32) uint8 {
	lit, pol := core.SplitTAID(taID)

	return s.Action(clause, lit, pol)
}

// Inclusions calls yield(taID) for every included automaton in clause k, in
// ascending ta_id order, stopping early if yield returns false. This is the
// shared query the clause evaluator uses across all three state back ends.
//
// Complexity: O(l) time, O(1) space.
func (s *Store) Inclusions(clause uint32, yield func(taID uint32) bool) {
	for lit := uint32(0); lit < s.l; lit++ {
		for pol := uint8(0); pol < 2; pol++ {
			if s.Action(clause, lit, pol) == 1 {
				if !yield(core.TAID(lit, pol)) {
					return
				}
			}
		}
	}
}

// RawStates returns the backing slice in the on-disk layout (index
// (((clause*L)+literal)*2)+polarity), for persistence. The returned slice
// aliases internal storage; callers must not retain it across mutation.
//
// Complexity: O(1).
func (s *Store) RawStates() []int8 {
	return s.states
}

// LoadStates overwrites the backing slice with externally supplied states,
// e.g. read from a binary model file. The length must equal k*l*2.
//
// Complexity: O(k*l).
func (s *Store) LoadStates(states []int8) error {
	if uint32(len(states)) != s.k*s.l*2 {
		return ErrStateLengthMismatch
	}
	copy(s.states, states)

	return nil
}
