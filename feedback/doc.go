// Package feedback implements the Type Ia/Ib/II feedback kernels and the
// per-row training protocol: given clipped votes for a row,
// sample a positive and negative class, then apply randomized feedback to
// every clause against each sampled class.
//
// Dense and sparse back ends get separate kernel implementations
// (kernel_dense.go, kernel_sparse.go) rather than a shared interface: dense
// feedback writes directly into a fixed array, while sparse feedback walks
// an ascending ta_id cursor that can insert or remove entries mid-scan —
// different enough in shape that forcing one abstraction over both would
// obscure more than it shares. Class sampling (sampling.go), by contrast,
// only touches votes and the PRNG, so it is written once and used by both.
package feedback
