// Package persist implements the binary model format: a sequential
// little-endian encoding of hyperparameters, weights, and automaton state,
// written directly from (and read directly into) the
// core/vote/densestate/sparsestate/statelessstate types — no intermediate
// representation.
//
// Three trailing layouts share the same header and weight block:
//   - Dense: a flat i8 state array, index (((k*L)+l)*2)+p.
//   - Sparse: per clause, an ascending (ta_id:u32, state:i8) sequence
//     terminated by the sentinel ta_id=0xFFFFFFFF.
//   - Stateless: the sparse layout with state dropped (ta_id only).
//
// Cross-loading lets the sparse and stateless loaders ingest a dense-format
// file, materializing only cells with action=1 — this is a deliberate
// sparsification: round-tripping dense->sparse->dense loses any state
// strictly below mid_state.
//
// This package is the one place standard-library-only serialization is
// appropriate: the on-disk layout is bespoke raw field packing matching the
// original C writer, not a structured document a general-purpose codec
// would reach for, so the package is written directly on encoding/binary.
package persist
