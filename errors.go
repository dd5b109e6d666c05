// SPDX-License-Identifier: MIT
package tsetlin

import "errors"

// ErrWrongLabelMode indicates a training call was made in a label-mode
// shape that doesn't match how the machine was constructed (e.g. calling
// TrainBinaryVector on a machine configured for class-index labels).
var ErrWrongLabelMode = errors.New("tsetlin: training call does not match the configured label mode")

// ErrWrongOutputMode is the predict-side counterpart of ErrWrongLabelMode.
var ErrWrongOutputMode = errors.New("tsetlin: predict call does not match the configured output mode")

// ErrRowCountMismatch indicates X and y (or yPred) disagree on the number
// of rows.
var ErrRowCountMismatch = errors.New("tsetlin: X and y row counts do not match")

// ErrNoEpochs indicates Train was called with epochs == 0.
var ErrNoEpochs = errors.New("tsetlin: epochs must be >= 1")
