// Package core defines the hyperparameters, sentinel errors, and small
// shared primitives (automaton action, TA identifiers, vote clipping) used
// by every Tsetlin Machine representation: dense, sparse, and stateless.
//
// The package declares Params (types.go), the TA-id encoding and clipping
// helpers (ta.go), and the sentinel errors callers branch on via errors.Is
// (errors.go).
package core
