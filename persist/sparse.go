// SPDX-License-Identifier: MIT
// Package: gotsetlin/persist
//
// sparse.go — save/load for the sparse representation, plus the
// dense-format cross-loader. Grounded on stm_save/stm_load_dense in
// sparse_tsetlin_machine.c.

package persist

import (
	"encoding/binary"
	"io"

	"github.com/notEloiir/gotsetlin/core"
	"github.com/notEloiir/gotsetlin/sparsestate"
	"github.com/notEloiir/gotsetlin/vote"
)

// SaveSparse writes a sparse model's header, weights, and per-clause
// ascending (ta_id, state) sequences (each terminated by ClauseSentinel) to w.
func SaveSparse(w io.Writer, p core.Params, weights *vote.Weights, store *sparsestate.Store) error {
	if err := WriteHeader(w, FromParams(p)); err != nil {
		return err
	}
	if err := WriteWeights(w, weights); err != nil {
		return err
	}

	for c := uint32(0); c < p.NumClauses; c++ {
		for _, e := range store.RawClause(c) {
			if err := binary.Write(w, binary.LittleEndian, e.TAID); err != nil {
				return err
			}
			if err := binary.Write(w, binary.LittleEndian, e.State); err != nil {
				return err
			}
		}
		if err := binary.Write(w, binary.LittleEndian, ClauseSentinel); err != nil {
			return err
		}
	}

	return nil
}

// readClauseEntries reads one clause's ascending (ta_id, state) sequence,
// stopping at ClauseSentinel.
func readClauseEntries(r io.Reader) ([]sparsestate.TAEntry, error) {
	var entries []sparsestate.TAEntry
	for {
		var taID uint32
		if err := binary.Read(r, binary.LittleEndian, &taID); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, ErrMissingSentinel
			}
			return nil, err
		}
		if taID == ClauseSentinel {
			return entries, nil
		}

		var state int8
		if err := binary.Read(r, binary.LittleEndian, &state); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, ErrTruncated
			}
			return nil, err
		}
		entries = append(entries, sparsestate.TAEntry{TAID: taID, State: state})
	}
}

// LoadSparse reads a sparse model from r, returning its hyperparameters,
// weights, and state store.
func LoadSparse(r io.Reader) (core.Params, *vote.Weights, *sparsestate.Store, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return core.Params{}, nil, nil, err
	}
	p := h.ToParams()

	weights, err := ReadWeights(r, p.NumClauses, p.NumClasses)
	if err != nil {
		return core.Params{}, nil, nil, err
	}

	d := p.Derive()
	store, err := sparsestate.New(p.NumClauses, p.NumLiterals, p.NumClasses, p.MaxState, p.MinState, d.MidState, d.SparseMinState, d.SparseInitState)
	if err != nil {
		return core.Params{}, nil, nil, err
	}

	for c := uint32(0); c < p.NumClauses; c++ {
		entries, err := readClauseEntries(r)
		if err != nil {
			return core.Params{}, nil, nil, err
		}
		store.LoadClause(c, entries)
	}

	return p, weights, store, nil
}

// LoadSparseFromDense reads a dense-format model from r and materializes a
// sparse store, keeping only cells with action=1 (this
// cross-loading contract: states strictly below mid_state vanish).
func LoadSparseFromDense(r io.Reader) (core.Params, *vote.Weights, *sparsestate.Store, error) {
	p, weights, dense, err := LoadDense(r)
	if err != nil {
		return core.Params{}, nil, nil, err
	}

	d := p.Derive()
	store, err := sparsestate.New(p.NumClauses, p.NumLiterals, p.NumClasses, p.MaxState, p.MinState, d.MidState, d.SparseMinState, d.SparseInitState)
	if err != nil {
		return core.Params{}, nil, nil, err
	}

	for c := uint32(0); c < p.NumClauses; c++ {
		var entries []sparsestate.TAEntry
		dense.Inclusions(c, func(taID uint32) bool {
			lit, pol := core.SplitTAID(taID)
			entries = append(entries, sparsestate.TAEntry{TAID: taID, State: dense.State(c, lit, pol)})
			return true
		})
		store.LoadClause(c, entries)
	}

	return p, weights, store, nil
}
