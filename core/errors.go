// SPDX-License-Identifier: MIT
// Package: gotsetlin/core
//
// errors.go — sentinel errors for hyperparameter validation.
//
// Error policy:
//   - Only sentinel variables are exposed; callers use errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     context is attached at the call site with fmt.Errorf("...: %w", ErrX).
package core

import "errors"

var (
	// ErrTooFewClasses indicates NumClasses < 1.
	ErrTooFewClasses = errors.New("core: num_classes must be >= 1")

	// ErrTooFewClauses indicates NumClauses < 1.
	ErrTooFewClauses = errors.New("core: num_clauses must be >= 1")

	// ErrTooFewLiterals indicates NumLiterals < 1.
	ErrTooFewLiterals = errors.New("core: num_literals must be >= 1")

	// ErrBadThreshold indicates Threshold < 1.
	ErrBadThreshold = errors.New("core: threshold must be >= 1")

	// ErrBadStateRange indicates MinState >= MaxState, or either out of [-128,127].
	ErrBadStateRange = errors.New("core: min_state must be < max_state, both within [-128,127]")

	// ErrBadSensitivity indicates S <= 1.0.
	ErrBadSensitivity = errors.New("core: s must be > 1.0")

	// ErrBadYSize indicates a y_size/y_element_size contract mismatch for the
	// configured output activation or feedback label mode.
	ErrBadYSize = errors.New("core: y_size does not match the configured mode")

	// ErrUnknownTA indicates a ta_id outside the valid [0, 2*NumLiterals) range.
	ErrUnknownTA = errors.New("core: ta_id out of range")
)
