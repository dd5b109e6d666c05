// Package densestate implements the canonical dense Tsetlin Automaton
// store: a contiguous (clause, literal, polarity) -> int8 matrix, trainable
// end-to-end. Every automaton exists from construction; there is no growth
// or pruning, unlike sparsestate.
//
// Storage is a flat row-major slice, indexed (((clause*L)+literal)*2)+polarity,
// matching the on-disk layout persist reads and writes directly.
package densestate
