// SPDX-License-Identifier: MIT
// Package: gotsetlin/core
//
// yaml.go — Params' human-editable companion to the binary persist
// format: hyperparameter presets for example harnesses and config files,
// never a wire format for automaton state itself.

package core

import "gopkg.in/yaml.v3"

// paramsYAML mirrors Params with lowercase snake_case keys matching the
// original C field names, for a stable on-disk config shape independent
// of Go field naming.
type paramsYAML struct {
	NumClasses                uint32  `yaml:"num_classes"`
	NumClauses                uint32  `yaml:"num_clauses"`
	NumLiterals               uint32  `yaml:"num_literals"`
	Threshold                 uint32  `yaml:"threshold"`
	MaxState                  int8    `yaml:"max_state"`
	MinState                  int8    `yaml:"min_state"`
	BoostTruePositiveFeedback bool    `yaml:"boost_true_positive_feedback"`
	S                         float64 `yaml:"s"`
}

// MarshalYAML renders p as a paramsYAML value.
func (p Params) MarshalYAML() (interface{}, error) {
	return paramsYAML{
		NumClasses:                p.NumClasses,
		NumClauses:                p.NumClauses,
		NumLiterals:               p.NumLiterals,
		Threshold:                 p.Threshold,
		MaxState:                  p.MaxState,
		MinState:                  p.MinState,
		BoostTruePositiveFeedback: p.BoostTruePositiveFeedback,
		S:                         p.S,
	}, nil
}

// UnmarshalYAML populates p from a paramsYAML document. It does not call
// Validate; callers are expected to validate after unmarshaling, the same
// as any other Params construction path.
func (p *Params) UnmarshalYAML(value *yaml.Node) error {
	var raw paramsYAML
	if err := value.Decode(&raw); err != nil {
		return err
	}

	p.NumClasses = raw.NumClasses
	p.NumClauses = raw.NumClauses
	p.NumLiterals = raw.NumLiterals
	p.Threshold = raw.Threshold
	p.MaxState = raw.MaxState
	p.MinState = raw.MinState
	p.BoostTruePositiveFeedback = raw.BoostTruePositiveFeedback
	p.S = raw.S

	return nil
}
