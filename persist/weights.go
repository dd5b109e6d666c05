// SPDX-License-Identifier: MIT
package persist

import (
	"encoding/binary"
	"io"

	"github.com/notEloiir/gotsetlin/vote"
)

// WriteWeights writes w's backing array row-major (clause, class).
func WriteWeights(w io.Writer, weights *vote.Weights) error {
	return binary.Write(w, binary.LittleEndian, weights.Raw())
}

// ReadWeights reads a (numClauses, numClasses) weight matrix from r.
func ReadWeights(r io.Reader, numClauses, numClasses uint32) (*vote.Weights, error) {
	raw := make([]int16, numClauses*numClasses)
	if err := binary.Read(r, binary.LittleEndian, raw); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrTruncated
		}
		return nil, err
	}

	return vote.NewFromRaw(numClauses, numClasses, raw)
}
