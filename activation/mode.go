// SPDX-License-Identifier: MIT
// Package: gotsetlin/activation
//
// mode.go — Mode: the output activation tagged variant, and the two
// concrete activations. Grounded on stm_oa_class_idx/stm_oa_bin_vector in
// sparse_tsetlin_machine.c.

package activation

import (
	"fmt"

	"github.com/notEloiir/gotsetlin/core"
)

// Mode selects how votes are translated into a predicted label.
type Mode int

const (
	// ClassIndex reports argmax(votes) as a single class id (y_size=1).
	ClassIndex Mode = iota
	// BinaryVector reports, per class, whether its vote exceeds mid_state
	// (y_size=num_classes).
	BinaryVector
)

// ClassIndexOutput writes argmax(votes) (ties resolved by first index) into
// out[0]. len(out) must be 1.
//
// Complexity: O(num_classes).
func ClassIndexOutput(votes []int32, out []uint32) error {
	if len(out) != 1 {
		return fmt.Errorf("activation: class-index output requires y_size=1: %w", core.ErrBadYSize)
	}

	best := uint32(0)
	bestScore := votes[0]
	for c := 1; c < len(votes); c++ {
		if votes[c] > bestScore {
			bestScore = votes[c]
			best = uint32(c)
		}
	}
	out[0] = best

	return nil
}

// BinaryVectorOutput writes, for every class c, 1 iff votes[c] > midState
// else 0, into out. len(out) must equal len(votes).
//
// Complexity: O(num_classes).
func BinaryVectorOutput(votes []int32, midState int8, out []uint8) error {
	if len(out) != len(votes) {
		return fmt.Errorf("activation: binary-vector output requires y_size=num_classes: %w", core.ErrBadYSize)
	}

	for c, v := range votes {
		if v > int32(midState) {
			out[c] = 1
		} else {
			out[c] = 0
		}
	}

	return nil
}
