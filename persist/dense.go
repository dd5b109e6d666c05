// SPDX-License-Identifier: MIT
// Package: gotsetlin/persist
//
// dense.go — save/load for the dense representation. Grounded on
// tm_save/tm_load in tsetlin_machine.c.

package persist

import (
	"encoding/binary"
	"io"

	"github.com/notEloiir/gotsetlin/core"
	"github.com/notEloiir/gotsetlin/densestate"
	"github.com/notEloiir/gotsetlin/vote"
)

// SaveDense writes a dense model's header, weights, and flat state array to
// w, in that order.
func SaveDense(w io.Writer, p core.Params, weights *vote.Weights, store *densestate.Store) error {
	if err := WriteHeader(w, FromParams(p)); err != nil {
		return err
	}
	if err := WriteWeights(w, weights); err != nil {
		return err
	}

	return binary.Write(w, binary.LittleEndian, store.RawStates())
}

// LoadDense reads a dense model from r, returning its hyperparameters,
// weights, and state store.
func LoadDense(r io.Reader) (core.Params, *vote.Weights, *densestate.Store, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return core.Params{}, nil, nil, err
	}
	p := h.ToParams()

	weights, err := ReadWeights(r, p.NumClauses, p.NumClasses)
	if err != nil {
		return core.Params{}, nil, nil, err
	}

	states := make([]int8, uint64(p.NumClauses)*uint64(p.NumLiterals)*2)
	if err := binary.Read(r, binary.LittleEndian, states); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return core.Params{}, nil, nil, ErrTruncated
		}
		return core.Params{}, nil, nil, err
	}

	d := p.Derive()
	store, err := densestate.NewFromStates(p.NumClauses, p.NumLiterals, p.MaxState, p.MinState, d.MidState, states)
	if err != nil {
		return core.Params{}, nil, nil, err
	}

	return p, weights, store, nil
}
