package treema

import "sort"

// Tuple is a fixed-arity container. It walks like a sequence but is rebuilt
// with identical arity and keeps its own identity through transforms, so a
// Tuple in never comes back as a []any.
type Tuple []any

// seqAdapter adapts []any as an ordered sequence: children are the elements,
// canonical order is positional.
type seqAdapter struct{}

func (seqAdapter) Traverse(c, acc any, fn TraverseFunc) (any, any, error) {
	s := c.([]any)
	out := make([]any, len(s))
	for i, child := range s {
		nv, nacc, err := fn(child, acc)
		if err != nil {
			return nil, nil, err
		}
		out[i] = nv
		acc = nacc
	}
	return out, acc, nil
}

func (seqAdapter) Reduce(c, acc any, fn ReduceFunc) (any, error) {
	for _, child := range c.([]any) {
		nacc, err := fn(child, acc)
		if err != nil {
			return nil, err
		}
		acc = nacc
	}
	return acc, nil
}

// tupleAdapter adapts Tuple: positional order, rebuilt with identical arity.
type tupleAdapter struct{}

func (tupleAdapter) Traverse(c, acc any, fn TraverseFunc) (any, any, error) {
	t := c.(Tuple)
	out := make(Tuple, len(t))
	for i, child := range t {
		nv, nacc, err := fn(child, acc)
		if err != nil {
			return nil, nil, err
		}
		out[i] = nv
		acc = nacc
	}
	return out, acc, nil
}

func (tupleAdapter) Reduce(c, acc any, fn ReduceFunc) (any, error) {
	for _, child := range c.(Tuple) {
		nacc, err := fn(child, acc)
		if err != nil {
			return nil, err
		}
		acc = nacc
	}
	return acc, nil
}

// mappingAdapter adapts map[string]any: children are the values, canonical
// order is ascending key order. The rebuilt mapping preserves the original
// key set. Ascending key order is what keeps zip alignment deterministic, so
// it is applied in every operation, not only in zip.
type mappingAdapter struct{}

func (mappingAdapter) Traverse(c, acc any, fn TraverseFunc) (any, any, error) {
	m := c.(map[string]any)
	out := make(map[string]any, len(m))
	for _, k := range sortedKeys(m) {
		nv, nacc, err := fn(m[k], acc)
		if err != nil {
			return nil, nil, err
		}
		out[k] = nv
		acc = nacc
	}
	return out, acc, nil
}

func (mappingAdapter) Reduce(c, acc any, fn ReduceFunc) (any, error) {
	m := c.(map[string]any)
	for _, k := range sortedKeys(m) {
		nacc, err := fn(m[k], acc)
		if err != nil {
			return nil, err
		}
		acc = nacc
	}
	return acc, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
