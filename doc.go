package treema

// Package treema provides:
//
// - Generic traversal, transformation and reduction over heterogeneously
//   nested data (Map/Reduce/MapReduce/FlatMap/Leaves and friends)
// - Leaf-by-leaf combination of two independently shaped trees (ZipWith/
//   ZipReduce) with a stable error model via Issues (code, message, params)
// - An open Container capability: built-in adapters for sequences, tuples
//   and mappings, plus interface- or registry-based registration for custom
//   container types
//
// Design policy:
// - Keep the public API in the root package; put ingestion sources under
//   source/ and the CLI under cmd/treema.
// - A value with no registered capability is a leaf; the engine never looks
//   inside leaves.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  out, err := treema.Map(tree, func(leaf any) (any, error) { ... })
//  sum, err := treema.Reduce(tree, 0, func(leaf any, acc int) (int, error) { ... })
//  combined, err := treema.ZipWith(left, right, func(l, r any) (any, error) { ... })
//
