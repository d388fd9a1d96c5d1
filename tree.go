package treema

// Map rebuilds v with fn applied to every leaf, preserving container shape at
// every node (same types, arity and key sets). Leaves are visited depth-first
// in canonical order. Errors returned by fn abort the walk and propagate
// unmodified.
func Map(v any, fn func(leaf any) (any, error)) (any, error) {
	out, _, err := walkTraverse(v, nil, func(leaf, acc any) (any, any, error) {
		nv, err := fn(leaf)
		return nv, acc, err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Reduce folds every leaf of v into acc in canonical depth-first order and
// returns the final accumulator. Shape is not preserved.
func Reduce[A any](v any, acc A, fn func(leaf any, acc A) (A, error)) (A, error) {
	out, err := walkReduce(v, acc, func(leaf, acc any) (any, error) {
		return fn(leaf, acc.(A))
	})
	if err != nil {
		var zero A
		return zero, err
	}
	return out.(A), nil
}

// MapReduce combines Map and Reduce: it returns the shape-preserving
// transformed structure together with the final accumulator, threaded in the
// same leaf order as Reduce.
func MapReduce[A any](v any, acc A, fn func(leaf any, acc A) (any, A, error)) (any, A, error) {
	out, facc, err := walkTraverse(v, acc, func(leaf, acc any) (any, any, error) {
		return fn(leaf, acc.(A))
	})
	if err != nil {
		var zero A
		return nil, zero, err
	}
	return out, facc.(A), nil
}

// FlatMap collapses every leaf of v, transformed by fn, into a single flat
// sequence in canonical depth-first order. Shape is discarded.
func FlatMap(v any, fn func(leaf any) (any, error)) ([]any, error) {
	out, err := walkReduce(v, []any{}, func(leaf, acc any) (any, error) {
		nv, err := fn(leaf)
		if err != nil {
			return nil, err
		}
		return append(acc.([]any), nv), nil
	})
	if err != nil {
		return nil, err
	}
	return out.([]any), nil
}

// flatAcc carries the flat sequence and the caller accumulator through a
// single walkReduce pass.
type flatAcc[A any] struct {
	flat []any
	acc  A
}

// FlatMapReduce is FlatMap with an accumulator threaded alongside; it returns
// the flat sequence and the final accumulator.
func FlatMapReduce[A any](v any, acc A, fn func(leaf any, acc A) (any, A, error)) ([]any, A, error) {
	out, err := walkReduce(v, flatAcc[A]{flat: []any{}, acc: acc}, func(leaf, acc any) (any, error) {
		st := acc.(flatAcc[A])
		nv, nacc, err := fn(leaf, st.acc)
		if err != nil {
			return nil, err
		}
		return flatAcc[A]{flat: append(st.flat, nv), acc: nacc}, nil
	})
	if err != nil {
		var zero A
		return nil, zero, err
	}
	st := out.(flatAcc[A])
	return st.flat, st.acc, nil
}

// Leaves returns every leaf of v in canonical depth-first order; it is the
// identity FlatMap and the flattening primitive the zip family builds on.
// Built-in containers never fail here; a custom Container that returns an
// error from Reduce surfaces that error.
func Leaves(v any) ([]any, error) {
	return FlatMap(v, func(leaf any) (any, error) { return leaf, nil })
}
