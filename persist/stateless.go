// SPDX-License-Identifier: MIT
// Package: gotsetlin/persist
//
// stateless.go — save/load for the stateless sparse representation, plus
// the dense-format cross-loader. Grounded on sltm_save/sltm_load_dense in
// stateless_tsetlin_machine.c: header, then weights, then per-clause
// ascending ta_id sequences (no per-entry state — this representation
// never trains, it only votes with whatever weights it was loaded with).

package persist

import (
	"encoding/binary"
	"io"

	"github.com/notEloiir/gotsetlin/core"
	"github.com/notEloiir/gotsetlin/statelessstate"
	"github.com/notEloiir/gotsetlin/vote"
)

// SaveStateless writes a stateless model's header, weights, and per-clause
// ascending ta_id sequences (each terminated by ClauseSentinel) to w.
func SaveStateless(w io.Writer, p core.Params, weights *vote.Weights, store *statelessstate.Store) error {
	if err := WriteHeader(w, FromParams(p)); err != nil {
		return err
	}
	if err := WriteWeights(w, weights); err != nil {
		return err
	}

	for c := uint32(0); c < p.NumClauses; c++ {
		for _, taID := range store.RawClause(c) {
			if err := binary.Write(w, binary.LittleEndian, taID); err != nil {
				return err
			}
		}
		if err := binary.Write(w, binary.LittleEndian, ClauseSentinel); err != nil {
			return err
		}
	}

	return nil
}

// readClauseTAIDs reads one clause's ascending ta_id sequence, stopping at
// ClauseSentinel.
func readClauseTAIDs(r io.Reader) ([]uint32, error) {
	var taIDs []uint32
	for {
		var taID uint32
		if err := binary.Read(r, binary.LittleEndian, &taID); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, ErrMissingSentinel
			}
			return nil, err
		}
		if taID == ClauseSentinel {
			return taIDs, nil
		}
		taIDs = append(taIDs, taID)
	}
}

// LoadStateless reads a stateless model from r, returning its
// hyperparameters, weights, and state store.
func LoadStateless(r io.Reader) (core.Params, *vote.Weights, *statelessstate.Store, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return core.Params{}, nil, nil, err
	}
	p := h.ToParams()

	weights, err := ReadWeights(r, p.NumClauses, p.NumClasses)
	if err != nil {
		return core.Params{}, nil, nil, err
	}

	store, err := statelessstate.New(p.NumClauses, p.NumLiterals)
	if err != nil {
		return core.Params{}, nil, nil, err
	}

	for c := uint32(0); c < p.NumClauses; c++ {
		taIDs, err := readClauseTAIDs(r)
		if err != nil {
			return core.Params{}, nil, nil, err
		}
		store.LoadClause(c, taIDs)
	}

	return p, weights, store, nil
}

// LoadStatelessFromDense reads a dense-format model from r and materializes
// a stateless store, keeping only the ta_ids with action=1 and discarding
// the underlying states (weights carry over unchanged).
func LoadStatelessFromDense(r io.Reader) (core.Params, *vote.Weights, *statelessstate.Store, error) {
	p, weights, dense, err := LoadDense(r)
	if err != nil {
		return core.Params{}, nil, nil, err
	}

	store, err := statelessstate.FromDense(dense)
	if err != nil {
		return core.Params{}, nil, nil, err
	}

	return p, weights, store, nil
}
