// SPDX-License-Identifier: MIT
package feedback

func validateRow(numLiterals uint32, X []uint8) error {
	if uint32(len(X)) != numLiterals {
		return ErrRowLengthMismatch
	}
	return nil
}

func validateBuffers(numClauses, numClasses uint32, clauseOutputs []uint8, votes []int32) error {
	if uint32(len(clauseOutputs)) != numClauses || uint32(len(votes)) != numClasses {
		return ErrBufferLengthMismatch
	}
	return nil
}
