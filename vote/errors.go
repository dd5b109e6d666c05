// SPDX-License-Identifier: MIT
package vote

import "errors"

// ErrInvalidShape indicates NumClauses or NumClasses is zero.
var ErrInvalidShape = errors.New("vote: num_clauses and num_classes must be >= 1")

// ErrWeightsLengthMismatch indicates a raw weights slice of the wrong length
// was supplied to Load.
var ErrWeightsLengthMismatch = errors.New("vote: weights slice has wrong length")

// ErrClauseOutputLengthMismatch indicates a clause-output slice's length
// does not equal NumClauses.
var ErrClauseOutputLengthMismatch = errors.New("vote: clause output slice length does not match num_clauses")

// ErrVotesLengthMismatch indicates a votes output slice's length does not
// equal NumClasses.
var ErrVotesLengthMismatch = errors.New("vote: votes slice length does not match num_classes")
