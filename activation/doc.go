// Package activation implements output activation: translating
// clipped class votes into the caller's chosen label representation.
//
// The original's function-pointer hook (output_activation) becomes a small
// tagged variant here: Mode selects between the two shapes, and the
// tsetlin façade switches on it once per predict call.
package activation
