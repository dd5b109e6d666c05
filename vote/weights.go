// SPDX-License-Identifier: MIT
// Package: gotsetlin/vote
//
// weights.go — Weights: the (clause, class) -> int16 weight matrix.
// Grounded on stm_initialize's weight randomization and stm_apply_feedback's
// saturating +/-1 weight nudge in sparse_tsetlin_machine.c (the dense
// machine's weights are identical in shape and update rule).

package vote

import (
	"github.com/notEloiir/gotsetlin/core"
	"github.com/notEloiir/gotsetlin/rng"
)

// Weights holds a flat row-major (clause, class) -> int16 matrix.
type Weights struct {
	k, numClasses uint32
	w             []int16
}

// NewWeights allocates a (k, numClasses) weight matrix and randomly
// initializes every entry to +1 or -1 via one PRNG coin flip each, in
// ascending (clause, class) order.
func NewWeights(k, numClasses uint32, r *rng.State) (*Weights, error) {
	if k < 1 || numClasses < 1 {
		return nil, ErrInvalidShape
	}

	w := &Weights{k: k, numClasses: numClasses, w: make([]int16, k*numClasses)}
	for i := range w.w {
		if r.NextFloat32() <= 0.5 {
			w.w[i] = 1
		} else {
			w.w[i] = -1
		}
	}

	return w, nil
}

// NewFromRaw allocates a (k, numClasses) weight matrix and loads it
// directly from raw, skipping randomization — used by persist to
// materialize weights read from a model file.
func NewFromRaw(k, numClasses uint32, raw []int16) (*Weights, error) {
	if k < 1 || numClasses < 1 {
		return nil, ErrInvalidShape
	}

	w := &Weights{k: k, numClasses: numClasses, w: make([]int16, k*numClasses)}
	if err := w.Load(raw); err != nil {
		return nil, err
	}

	return w, nil
}

// NumClauses returns k.
func (w *Weights) NumClauses() uint32 { return w.k }

// NumClasses returns the number of classes.
func (w *Weights) NumClasses() uint32 { return w.numClasses }

// Get returns the weight of (clause, class).
//
// Complexity: O(1).
func (w *Weights) Get(clause, class uint32) int16 {
	return w.w[clause*w.numClasses+class]
}

// Set overwrites the weight of (clause, class), without saturation.
//
// Complexity: O(1).
func (w *Weights) Set(clause, class uint32, v int16) {
	w.w[clause*w.numClasses+class] = v
}

// Add nudges the weight of (clause, class) by delta, saturating at the
// int16 bounds, saturating instead of wrapping.
//
// Complexity: O(1).
func (w *Weights) Add(clause, class uint32, delta int32) {
	i := clause*w.numClasses + class
	w.w[i] = core.ClampInt16(int32(w.w[i]) + delta)
}

// Raw returns the backing slice in on-disk layout (clause*numClasses+class),
// for persistence. The returned slice aliases internal storage; callers
// must not retain it across mutation.
//
// Complexity: O(1).
func (w *Weights) Raw() []int16 {
	return w.w
}

// Load overwrites the backing slice with externally supplied weights, e.g.
// read from a binary model file. The length must equal k*numClasses.
//
// Complexity: O(k*numClasses).
func (w *Weights) Load(raw []int16) error {
	if uint32(len(raw)) != w.k*w.numClasses {
		return ErrWeightsLengthMismatch
	}
	copy(w.w, raw)

	return nil
}
