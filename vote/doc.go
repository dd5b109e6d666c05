// Package vote implements clause weights and vote summation:
// each (clause, class) pair carries a signed int16 weight, randomly
// initialized to +1 or -1; an active clause contributes its weight to every
// class's running vote total, which is then clipped to [-threshold,
// threshold].
//
// Weights are shared state between the clause-evaluation/vote-summation
// path and the feedback path (Type Ia/II feedback nudge them by ±1,
// saturating at the int16 bounds), so they live here rather than inside any
// one state-store package — both densestate- and sparsestate-backed
// machines share the same Weights type.
package vote
