// Package sparsestate implements the growable/prunable Tsetlin Automaton
// store: clauses start empty and acquire automata only through Type II
// feedback (spawned at sparse_init_state), losing them again when Type Ia/Ib
// feedback drives a state below sparse_min_state.
//
// Where densestate keeps every (clause, literal, polarity) cell from
// construction, sparsestate tracks only the automata a clause currently
// cares about, per clause, as an ascending-ta_id ordered slice. This mirrors
// the original singly linked per-clause list (insert-after/remove-after a
// cursor) with an array instead of pointers, trading O(1) node splice for
// better cache locality on the sequential scans every feedback kernel
// performs.
//
// A per-class active-literal bitset records which literals Type Ia feedback
// has ever observed as relevant to a class; Type II feedback only spawns a
// new automaton for a literal once that class has marked it active.
package sparsestate
