// SPDX-License-Identifier: MIT
package densestate

import "errors"

// ErrClauseOutOfRange indicates a clause index outside [0, NumClauses).
var ErrClauseOutOfRange = errors.New("densestate: clause index out of range")

// ErrInvalidShape indicates NumClauses or NumLiterals is zero.
var ErrInvalidShape = errors.New("densestate: num_clauses and num_literals must be >= 1")

// ErrStateLengthMismatch indicates a states slice of the wrong length was
// supplied to LoadStates or NewFromStates.
var ErrStateLengthMismatch = errors.New("densestate: state slice has wrong length")
