// SPDX-License-Identifier: MIT
package statelessstate

import "errors"

// ErrInvalidShape indicates NumClauses or NumLiterals is zero.
var ErrInvalidShape = errors.New("statelessstate: num_clauses and num_literals must be >= 1")

// ErrShapeMismatch indicates a conversion source's shape does not match the
// requested stateless store shape.
var ErrShapeMismatch = errors.New("statelessstate: source shape does not match")
