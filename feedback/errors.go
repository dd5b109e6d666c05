// SPDX-License-Identifier: MIT
package feedback

import "errors"

// ErrRowLengthMismatch indicates an input row's length does not equal the
// store's num_literals.
var ErrRowLengthMismatch = errors.New("feedback: input row length does not match num_literals")

// ErrLabelVectorLengthMismatch indicates a binary-vector label's length
// does not equal num_classes.
var ErrLabelVectorLengthMismatch = errors.New("feedback: label vector length does not match num_classes")

// ErrLabelOutOfRange indicates a class-index label is >= num_classes.
var ErrLabelOutOfRange = errors.New("feedback: label out of range")

// ErrBufferLengthMismatch indicates a caller-supplied clause-output or vote
// scratch buffer has the wrong length.
var ErrBufferLengthMismatch = errors.New("feedback: scratch buffer length mismatch")
