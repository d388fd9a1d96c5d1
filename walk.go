package treema

// walkTraverse is the shape-preserving walk core. At each value it asks
// "leaf or container?": a leaf goes straight to fn, a container delegates to
// its capability with a callback that re-enters walkTraverse for every child.
// This mutual recursion between engine and capability is what handles
// arbitrary depth and mixed container kinds; it terminates because structures
// are finite and acyclic. Recursion depth equals nesting depth.
func walkTraverse(v, acc any, fn TraverseFunc) (any, any, error) {
	if a, ok := adapterFor(v); ok {
		return a.Traverse(v, acc, func(child, acc any) (any, any, error) {
			return walkTraverse(child, acc, fn)
		})
	}
	return fn(v, acc)
}

// walkReduce is the folding walk core; same dispatch as walkTraverse but
// nothing is rebuilt.
func walkReduce(v, acc any, fn ReduceFunc) (any, error) {
	if a, ok := adapterFor(v); ok {
		return a.Reduce(v, acc, func(child, acc any) (any, error) {
			return walkReduce(child, acc, fn)
		})
	}
	return fn(v, acc)
}
