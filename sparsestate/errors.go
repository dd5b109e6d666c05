// SPDX-License-Identifier: MIT
package sparsestate

import "errors"

// ErrInvalidShape indicates NumClauses, NumLiterals or NumClasses is zero.
var ErrInvalidShape = errors.New("sparsestate: num_clauses, num_literals and num_classes must be >= 1")

// ErrClauseOutOfRange indicates a clause index outside [0, NumClauses).
var ErrClauseOutOfRange = errors.New("sparsestate: clause index out of range")

// ErrClassOutOfRange indicates a class index outside [0, NumClasses).
var ErrClassOutOfRange = errors.New("sparsestate: class index out of range")

// ErrEntryIndexOutOfRange indicates an entry position outside a clause's
// current length.
var ErrEntryIndexOutOfRange = errors.New("sparsestate: entry index out of range")

// ErrTAIDOutOfOrder indicates InsertAt was asked to place a ta_id that
// would break the clause's ascending-ta_id invariant.
var ErrTAIDOutOfOrder = errors.New("sparsestate: ta_id insert would break ascending order")

// ErrUnterminatedClause indicates a loaded clause entry sequence was missing
// its UINT32_MAX sentinel before running out of data.
var ErrUnterminatedClause = errors.New("sparsestate: clause entry sequence missing terminator")
