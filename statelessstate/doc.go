// Package statelessstate implements the inference-only Tsetlin Automaton
// store: for each clause, only the set of currently included ta_ids is kept
// — no automaton state, no training. This is the leanest of the three
// representations  and the one a deployed
// model typically ships as, built once from a trained dense or sparse
// machine via FromDense or FromSparse.
package statelessstate
