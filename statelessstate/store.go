// SPDX-License-Identifier: MIT
// Package: gotsetlin/statelessstate
//
// store.go — Store: per-clause ascending ta_id inclusion sets, with no
// automaton state attached. Grounded on the original C
// StatelessTsetlinMachine, which persists only ta_id (no ta_state) per
// node and never runs feedback; re-expressed here, like sparsestate, as a
// per-clause slice rather than a linked list.

package statelessstate

import (
	"github.com/notEloiir/gotsetlin/densestate"
	"github.com/notEloiir/gotsetlin/sparsestate"
)

// Store holds, for every clause, the ascending ta_id sequence of literals it
// requires for activation. There is no automaton state: a ta_id is either
// present (included) or absent (excluded).
type Store struct {
	k, l    uint32
	clauses [][]uint32
}

// New allocates an empty stateless store of shape (k, l). Use FromDense or
// FromSparse to populate it from a trained machine, or LoadClause to
// populate it directly from persisted data.
func New(k, l uint32) (*Store, error) {
	if k < 1 || l < 1 {
		return nil, ErrInvalidShape
	}

	return &Store{k: k, l: l, clauses: make([][]uint32, k)}, nil
}

// FromDense builds a stateless store from a trained dense store, keeping
// only the ta_ids whose action is 1 (this cross-representation load:
// materialize only included automata).
//
// Complexity: O(k*l).
func FromDense(d *densestate.Store) (*Store, error) {
	s, err := New(d.NumClauses(), d.NumLiterals())
	if err != nil {
		return nil, err
	}

	for c := uint32(0); c < s.k; c++ {
		var taIDs []uint32
		d.Inclusions(c, func(taID uint32) bool {
			taIDs = append(taIDs, taID)
			return true
		})
		s.clauses[c] = taIDs
	}

	return s, nil
}

// FromSparse builds a stateless store from a trained sparse store, keeping
// only the ta_ids whose tracked state is currently included.
//
// Complexity: O(sum of per-clause tracked automata).
func FromSparse(sp *sparsestate.Store) (*Store, error) {
	s, err := New(sp.NumClauses(), sp.NumLiterals())
	if err != nil {
		return nil, err
	}

	for c := uint32(0); c < s.k; c++ {
		var taIDs []uint32
		sp.Inclusions(c, func(taID uint32) bool {
			taIDs = append(taIDs, taID)
			return true
		})
		s.clauses[c] = taIDs
	}

	return s, nil
}

// NumClauses returns k.
func (s *Store) NumClauses() uint32 { return s.k }

// NumLiterals returns l.
func (s *Store) NumLiterals() uint32 { return s.l }

// Inclusions calls yield(taID) for every included automaton of clause, in
// ascending ta_id order, stopping early if yield returns false. Satisfies
// the same contract as densestate.Store.Inclusions and
// sparsestate.Store.Inclusions.
//
// Complexity: O(n) where n is the clause's inclusion count.
func (s *Store) Inclusions(clause uint32, yield func(taID uint32) bool) {
	for _, taID := range s.clauses[clause] {
		if !yield(taID) {
			return
		}
	}
}

// RawClause returns the live backing slice for clause, in ascending ta_id
// order, for persistence. The returned slice aliases internal storage;
// callers must not retain it across mutation.
//
// Complexity: O(1).
func (s *Store) RawClause(clause uint32) []uint32 {
	return s.clauses[clause]
}

// LoadClause replaces clause's inclusion set with taIDs, which must already
// be in ascending order (as read from a persisted model).
//
// Complexity: O(len(taIDs)).
func (s *Store) LoadClause(clause uint32, taIDs []uint32) {
	s.clauses[clause] = append([]uint32(nil), taIDs...)
}
