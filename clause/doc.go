// Package clause implements clause evaluation: given an input
// row X and a state store, decide which clauses are "active" (all their
// included literals agree with X).
//
// Evaluate and EvaluateAll are written once against the StateStore
// interface and shared verbatim across densestate, sparsestate and
// statelessstate — the three back ends differ only in how they enumerate a
// clause's included automata (densestate.Store.Inclusions,
// sparsestate.Store.Inclusions, statelessstate.Store.Inclusions all satisfy
// the same contract), so evaluation logic never needs to know which one it
// is looking at. This is the property the contract exercises directly: dense and
// sparse evaluation must agree bit-for-bit given equivalent state.
package clause
