// Package tsetlin is an interpretable, rule-learning classifier built on
// Tsetlin Automata: small finite-state machines that cooperatively decide
// which input literals are included in conjunctive clauses.
//
// 🚀 What is gotsetlin?
//
//	A dependency-light, deterministic Tsetlin Machine with three
//	coexisting representations:
//
//	  • Dense  — canonical trainable matrix of automaton states
//	  • Sparse — only active automata materialized; grows and prunes
//	  • Stateless — inference-only inclusion sets, loaded from a trained model
//
// ✨ Why choose gotsetlin?
//
//   - Deterministic   — one PRNG per machine, reproducible given (seed, data)
//   - Interpretable   — clauses are literal conjunctions, not opaque weights
//   - Pure Go         — no cgo, a single binary model format across variants
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/           — hyperparameters, sentinel errors, TA-id helpers
//	rng/            — deterministic xorshift32 PRNG
//	densestate/     — dense (clause, literal, polarity) automaton store
//	sparsestate/    — sparse, growable/prunable automaton store
//	statelessstate/ — inference-only inclusion-set store
//	clause/         — clause evaluator over any automaton store
//	vote/           — vote summation and clipping
//	feedback/       — Type Ia/Ib/II feedback kernels and class sampling
//	activation/     — output activation (class-index / binary-vector)
//	persist/        — binary model format, cross-representation loaders
//
// Quick usage:
//
//	m, err := tsetlin.NewDense(core.Params{
//	    NumClasses: 2, NumClauses: 20, NumLiterals: 4, Threshold: 15,
//	    MaxState: 127, MinState: -127, S: 3.0,
//	}, tsetlin.ClassIndexLabels, tsetlin.ClassIndexOutput, 42)
//	m.TrainClassIndex(X, y, epochs)
//	pred, err := m.PredictClassIndex(X)
//
//	go get github.com/notEloiir/gotsetlin
package tsetlin
