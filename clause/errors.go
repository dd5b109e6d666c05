// SPDX-License-Identifier: MIT
package clause

import "errors"

// ErrRowLengthMismatch indicates an input row's length does not equal the
// store's NumLiterals.
var ErrRowLengthMismatch = errors.New("clause: input row length does not match num_literals")

// ErrOutputLengthMismatch indicates an output slice's length does not equal
// the store's NumClauses.
var ErrOutputLengthMismatch = errors.New("clause: output slice length does not match num_clauses")
