// SPDX-License-Identifier: MIT
// Package: gotsetlin/feedback
//
// sampling.go — positive/negative class selection for both label modes.
// Grounded on stm_feedback_class_idx / stm_feedback_bin_vector in
// sparse_tsetlin_machine.c, following this corrected contract
// rather than the source's negative-class-before-assignment slip in the
// binary-vector positive-probability line.

package feedback

import (
	"github.com/notEloiir/gotsetlin/core"
	"github.com/notEloiir/gotsetlin/rng"
)

// LabelMode selects how per-row labels are interpreted when sampling the
// positive and negative classes for feedback.
type LabelMode int

const (
	// ClassIndexLabel: y_size=1, element is the index of the correct class.
	ClassIndexLabel LabelMode = iota
	// BinaryVectorLabel: y_size=num_classes, element c is 1 iff c is correct.
	BinaryVectorLabel
)

// updateProbabilityPositive is p+ = (T - clip(votes[c+], T)) / (2T): large
// when the model is unsure about the true class.
func updateProbabilityPositive(votes int32, threshold uint32) float64 {
	clipped := core.Clip(votes, int32(threshold))
	return (float64(threshold) - float64(clipped)) / (2 * float64(threshold))
}

// updateProbabilityNegative is p- = (clip(votes[c-], T) + T) / (2T): large
// when the model is wrongly confident about a negative class.
func updateProbabilityNegative(votes int32, threshold uint32) float64 {
	clipped := core.Clip(votes, int32(threshold))
	return (float64(clipped) + float64(threshold)) / (2 * float64(threshold))
}

// sampleWeighted draws one class index from the classes for which include
// returns true, weighted by clip(votes[c], T) + T, via PRNG cumulative-sum
// sampling: next_u32() mod total, then a cumulative scan for
// the first class whose running sum is >= the draw. ok is false when no
// eligible class carries positive weight.
func sampleWeighted(numClasses uint32, threshold uint32, votes []int32, include func(class uint32) bool, r *rng.State) (class uint32, ok bool) {
	var total int64
	for c := uint32(0); c < numClasses; c++ {
		if !include(c) {
			continue
		}
		total += int64(core.Clip(votes[c], int32(threshold))) + int64(threshold)
	}
	if total <= 0 {
		return 0, false
	}

	draw := int64(r.NextU32()) % total
	var acc int64
	for c := uint32(0); c < numClasses; c++ {
		if !include(c) {
			continue
		}
		acc += int64(core.Clip(votes[c], int32(threshold))) + int64(threshold)
		if acc >= draw {
			return c, true
		}
	}

	return 0, false // unreachable: acc reaches total > draw by construction
}

// classIndexNegative draws c- from the classes other than label, weighted
// by clip(votes[c], T) + T.
func classIndexNegative(label uint32, numClasses, threshold uint32, votes []int32, r *rng.State) (uint32, bool) {
	return sampleWeighted(numClasses, threshold, votes, func(c uint32) bool { return c != label }, r)
}

// binVectorPositive draws c+ from {c : labelVec[c]=1}, weighted by
// clip(votes[c], T) + T.
func binVectorPositive(labelVec []uint8, numClasses, threshold uint32, votes []int32, r *rng.State) (uint32, bool) {
	return sampleWeighted(numClasses, threshold, votes, func(c uint32) bool { return labelVec[c] == 1 }, r)
}

// binVectorNegative draws c- from {c : labelVec[c]=0}, weighted by
// clip(votes[c], T) + T.
func binVectorNegative(labelVec []uint8, numClasses, threshold uint32, votes []int32, r *rng.State) (uint32, bool) {
	return sampleWeighted(numClasses, threshold, votes, func(c uint32) bool { return labelVec[c] == 0 }, r)
}
