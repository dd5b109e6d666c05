// SPDX-License-Identifier: MIT
// Package: gotsetlin/vote
//
// sum.go — Sum: tally clipped class votes from clause outputs and weights.
// Grounded on sum_votes in tsetlin_machine.c/sparse_tsetlin_machine.c.

package vote

import "github.com/notEloiir/gotsetlin/core"

// Sum tallies, for every class, the sum of weights of clauses currently
// active (clauseOutputs[c]==1), then clips the total to
// [-threshold, threshold]. Results are written into votes, which the caller
// must size to w.NumClasses().
//
// Complexity: O(k*numClasses).
func Sum(w *Weights, clauseOutputs []uint8, threshold uint32, votes []int32) error {
	if uint32(len(clauseOutputs)) != w.k {
		return ErrClauseOutputLengthMismatch
	}
	if uint32(len(votes)) != w.numClasses {
		return ErrVotesLengthMismatch
	}

	for i := range votes {
		votes[i] = 0
	}

	for c := uint32(0); c < w.k; c++ {
		if clauseOutputs[c] == 0 {
			continue
		}
		for class := uint32(0); class < w.numClasses; class++ {
			votes[class] += int32(w.Get(c, class))
		}
	}

	t := int32(threshold)
	for class := range votes {
		votes[class] = core.Clip(votes[class], t)
	}

	return nil
}
