// SPDX-License-Identifier: MIT
// Package: gotsetlin/persist
//
// header.go — Header: the fixed-layout metadata block common to every
// model file, matching stm_save/stm_load_dense's leading fread/fwrite
// sequence field-for-field.

package persist

import (
	"encoding/binary"
	"io"

	"github.com/notEloiir/gotsetlin/core"
)

// ClauseSentinel terminates a sparse or stateless clause's entry sequence.
const ClauseSentinel uint32 = 0xFFFFFFFF

// Header is the metadata block written before weights and automaton state.
type Header struct {
	Threshold                 uint32
	NumLiterals                uint32
	NumClauses                 uint32
	NumClasses                 uint32
	MaxState                   int8
	MinState                   int8
	BoostTruePositiveFeedback  uint8
	S                          float64
}

// FromParams builds a Header from validated hyperparameters.
func FromParams(p core.Params) Header {
	boost := uint8(0)
	if p.BoostTruePositiveFeedback {
		boost = 1
	}

	return Header{
		Threshold:                p.Threshold,
		NumLiterals:              p.NumLiterals,
		NumClauses:               p.NumClauses,
		NumClasses:               p.NumClasses,
		MaxState:                 p.MaxState,
		MinState:                 p.MinState,
		BoostTruePositiveFeedback: boost,
		S:                        p.S,
	}
}

// ToParams recovers core.Params from a loaded Header.
func (h Header) ToParams() core.Params {
	return core.Params{
		NumClasses:                h.NumClasses,
		NumClauses:                h.NumClauses,
		NumLiterals:               h.NumLiterals,
		Threshold:                 h.Threshold,
		MaxState:                  h.MaxState,
		MinState:                  h.MinState,
		BoostTruePositiveFeedback: h.BoostTruePositiveFeedback != 0,
		S:                         h.S,
	}
}

// WriteHeader writes the fixed-layout metadata block to w, in field order:
// threshold, num_literals, num_clauses, num_classes, max_state, min_state,
// boost_true_positive_feedback, s.
func WriteHeader(w io.Writer, h Header) error {
	fields := []any{
		h.Threshold, h.NumLiterals, h.NumClauses, h.NumClasses,
		h.MaxState, h.MinState, h.BoostTruePositiveFeedback, h.S,
	}
	for _, f := range fields {
		if err := binary.Write(w, binary.LittleEndian, f); err != nil {
			return err
		}
	}

	return nil
}

// ReadHeader reads the fixed-layout metadata block from r.
func ReadHeader(r io.Reader) (Header, error) {
	var h Header
	fields := []any{
		&h.Threshold, &h.NumLiterals, &h.NumClauses, &h.NumClasses,
		&h.MaxState, &h.MinState, &h.BoostTruePositiveFeedback, &h.S,
	}
	for _, f := range fields {
		if err := binary.Read(r, binary.LittleEndian, f); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return Header{}, ErrTruncated
			}
			return Header{}, err
		}
	}

	return h, nil
}
