// Package rng implements the deterministic xorshift32 generator used as the
// single source of randomness for a Tsetlin Machine. Every random decision
// made during training — literal-level reinforcement, class sampling,
// automaton growth — draws from exactly one PRNG instance seeded at
// machine construction, so (seed, data, hyperparameters) fully determines
// the training trajectory.
package rng
