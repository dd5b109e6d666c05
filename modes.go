// SPDX-License-Identifier: MIT
// modes.go — re-exports of the label/output mode tagged variants so
// callers never import feedback or activation directly.
package tsetlin

import (
	"github.com/notEloiir/gotsetlin/activation"
	"github.com/notEloiir/gotsetlin/feedback"
)

// LabelMode selects how training labels are shaped and sampled.
type LabelMode = feedback.LabelMode

const (
	// ClassIndexLabels is one class id per row (y_size=1).
	ClassIndexLabels = feedback.ClassIndexLabel
	// BinaryVectorLabels is one bit per class per row (y_size=num_classes).
	BinaryVectorLabels = feedback.BinaryVectorLabel
)

// OutputMode selects how predicted votes are translated into a label.
type OutputMode = activation.Mode

const (
	// ClassIndexOutput reports argmax(votes) as a single class id.
	ClassIndexOutput = activation.ClassIndex
	// BinaryVectorOutput reports, per class, whether its vote exceeds mid_state.
	BinaryVectorOutput = activation.BinaryVector
)
