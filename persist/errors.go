// SPDX-License-Identifier: MIT
package persist

import "errors"

// ErrTruncated indicates the stream ended before a required field could be
// read in full.
var ErrTruncated = errors.New("persist: unexpected end of data while reading model")

// ErrMissingSentinel indicates a sparse or stateless clause sequence ran out
// of data before its terminating sentinel.
var ErrMissingSentinel = errors.New("persist: clause sequence missing terminating sentinel")
