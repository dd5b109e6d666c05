// SPDX-License-Identifier: MIT
// Package: gotsetlin/sparsestate
//
// store.go — Store: per-clause ascending-ta_id automaton sequences plus a
// per-class active-literal bitset. Grounded on the original C
// SparseTsetlinMachine's per-clause singly linked TAStateNode list
// (ta_state_insert/ta_state_remove) and active_literals bitmap, re-expressed
// as an array-of-structs per clause, keeping a flat backing slice instead
// of a tree of pointers.

package sparsestate

import "sort"

// TAEntry is one tracked automaton within a clause: its flat ta_id
// (2*literal+polarity) and current state.
type TAEntry struct {
	TAID  uint32
	State int8
}

// Store holds, for every clause, the ascending-ta_id ordered sequence of
// automata it currently tracks, and, for every class, a bitset of literals
// that Type Ia feedback has marked relevant.
type Store struct {
	k, l, numClasses uint32
	maxState         int8
	minState         int8
	midState         int8
	sparseMinState   int8
	sparseInitState  int8
	rowSize          uint32 // bytes per class row of activeLiterals

	clauses        [][]TAEntry
	activeLiterals [][]uint8 // [class][byte], bit (literal & 7) of byte (literal >> 3)
}

// New allocates a sparse store of k empty clauses over l literals and
// numClasses classes. Unlike densestate.New, clauses start with zero tracked
// automata; population happens exclusively through Type II feedback during
// training: sparse clauses start empty.
func New(k, l, numClasses uint32, maxState, minState, midState, sparseMinState, sparseInitState int8) (*Store, error) {
	if k < 1 || l < 1 || numClasses < 1 {
		return nil, ErrInvalidShape
	}

	rowSize := (l-1)/8 + 1
	s := &Store{
		k: k, l: l, numClasses: numClasses,
		maxState: maxState, minState: minState, midState: midState,
		sparseMinState: sparseMinState, sparseInitState: sparseInitState,
		rowSize:        rowSize,
		clauses:        make([][]TAEntry, k),
		activeLiterals: make([][]uint8, numClasses),
	}
	for c := range s.activeLiterals {
		s.activeLiterals[c] = make([]uint8, rowSize)
	}

	return s, nil
}

// NumClauses returns k.
func (s *Store) NumClauses() uint32 { return s.k }

// NumLiterals returns l.
func (s *Store) NumLiterals() uint32 { return s.l }

// NumClasses returns the number of active-literal rows tracked.
func (s *Store) NumClasses() uint32 { return s.numClasses }

// MidState returns the derived mid_state boundary.
func (s *Store) MidState() int8 { return s.midState }

// MaxState returns the configured upper state bound.
func (s *Store) MaxState() int8 { return s.maxState }

// MinState returns the configured lower state bound.
func (s *Store) MinState() int8 { return s.minState }

// SparseMinState returns the pruning floor: an automaton whose state falls
// below this value is dropped from its clause.
func (s *Store) SparseMinState() int8 { return s.sparseMinState }

// SparseInitState returns the state a newly spawned automaton starts at.
func (s *Store) SparseInitState() int8 { return s.sparseInitState }

// Len returns the number of automata currently tracked by clause.
//
// Complexity: O(1).
func (s *Store) Len(clause uint32) int {
	return len(s.clauses[clause])
}

// At returns the i-th tracked automaton of clause, in ascending ta_id order.
//
// Complexity: O(1).
func (s *Store) At(clause uint32, i int) TAEntry {
	return s.clauses[clause][i]
}

// Find locates ta_id within clause via binary search over the ascending
// sequence. ok is false if no automaton is currently tracked for ta_id; idx
// is then the insertion point that preserves ascending order.
//
// Complexity: O(log n) where n is the clause's current automaton count.
func (s *Store) Find(clause uint32, taID uint32) (idx int, ok bool) {
	entries := s.clauses[clause]
	i := sort.Search(len(entries), func(i int) bool { return entries[i].TAID >= taID })
	if i < len(entries) && entries[i].TAID == taID {
		return i, true
	}

	return i, false
}

// SetStateAt overwrites the state of the i-th tracked automaton of clause,
// without saturation or pruning — callers are responsible for both.
//
// Complexity: O(1).
func (s *Store) SetStateAt(clause uint32, i int, state int8) {
	s.clauses[clause][i].State = state
}

// RemoveAt drops the i-th tracked automaton of clause, shifting later
// entries down by one.
//
// Complexity: O(n).
func (s *Store) RemoveAt(clause uint32, i int) {
	entries := s.clauses[clause]
	s.clauses[clause] = append(entries[:i], entries[i+1:]...)
}

// InsertAt spawns a new automaton for ta_id at position i with the given
// initial state, shifting later entries up by one. Callers must supply i as
// returned by Find (ok=false) to preserve the ascending-ta_id invariant;
// InsertAt itself only checks the immediate neighbors.
//
// Complexity: O(n).
func (s *Store) InsertAt(clause uint32, i int, taID uint32, state int8) error {
	entries := s.clauses[clause]
	if i > 0 && entries[i-1].TAID >= taID {
		return ErrTAIDOutOfOrder
	}
	if i < len(entries) && entries[i].TAID <= taID {
		return ErrTAIDOutOfOrder
	}

	entries = append(entries, TAEntry{})
	copy(entries[i+1:], entries[i:])
	entries[i] = TAEntry{TAID: taID, State: state}
	s.clauses[clause] = entries

	return nil
}

// ActiveLiteral reports whether literal has been marked active (relevant)
// for classID by prior Type Ia feedback.
//
// Complexity: O(1).
func (s *Store) ActiveLiteral(classID, literal uint32) bool {
	return s.activeLiterals[classID][literal>>3]&(1<<(literal&7)) != 0
}

// SetActiveLiteral marks literal active for classID.
//
// Complexity: O(1).
func (s *Store) SetActiveLiteral(classID, literal uint32) {
	s.activeLiterals[classID][literal>>3] |= 1 << (literal & 7)
}

// Inclusions calls yield(taID) for every currently tracked automaton of
// clause whose state is at or above mid_state (included), in ascending
// ta_id order, stopping early if yield returns false. Satisfies the same
// contract as densestate.Store.Inclusions, letting clause evaluation share
// one implementation across both back ends.
//
// Complexity: O(n) where n is the clause's current automaton count.
func (s *Store) Inclusions(clause uint32, yield func(taID uint32) bool) {
	for _, e := range s.clauses[clause] {
		if e.State >= s.midState {
			if !yield(e.TAID) {
				return
			}
		}
	}
}

// RawClause returns the live backing slice for clause, in ascending ta_id
// order, for persistence. The returned slice aliases internal storage;
// callers must not retain it across mutation.
//
// Complexity: O(1).
func (s *Store) RawClause(clause uint32) []TAEntry {
	return s.clauses[clause]
}

// LoadClause replaces clause's tracked automata with entries, which must
// already be in ascending ta_id order (as read from a persisted model).
//
// Complexity: O(len(entries)).
func (s *Store) LoadClause(clause uint32, entries []TAEntry) {
	s.clauses[clause] = append([]TAEntry(nil), entries...)
}
