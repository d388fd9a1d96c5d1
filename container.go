package treema

import (
	"reflect"
	"sync"
)

// TraverseFunc is applied to each immediate child of a container during a
// shape-preserving walk. It returns the replacement child and the threaded
// accumulator.
type TraverseFunc func(child, acc any) (any, any, error)

// ReduceFunc is applied to each immediate child of a container during a fold.
// It returns the threaded accumulator only; nothing is rebuilt.
type ReduceFunc func(child, acc any) (any, error)

// Container is the capability a custom container type can implement directly.
//
// Traverse must visit every immediate child in canonical order, thread the
// accumulator through fn, and rebuild a container of the same shape (same
// length, arity or key set) from the returned children. Reduce must visit the
// same children in the same order without rebuilding anything.
//
// Canonical order is positional for sequence-like containers and ascending key
// order for mapping-like containers.
type Container interface {
	Traverse(acc any, fn TraverseFunc) (any, any, error)
	Reduce(acc any, fn ReduceFunc) (any, error)
}

// Adapter supplies the Container capability for a type that cannot carry
// methods itself (plain slices and maps). The container value is passed in as
// the first argument.
type Adapter interface {
	Traverse(c, acc any, fn TraverseFunc) (any, any, error)
	Reduce(c, acc any, fn ReduceFunc) (any, error)
}

var (
	adapterMu sync.RWMutex
	adapters  = map[reflect.Type]Adapter{
		reflect.TypeOf([]any(nil)):          seqAdapter{},
		reflect.TypeOf(Tuple(nil)):          tupleAdapter{},
		reflect.TypeOf(map[string]any(nil)): mappingAdapter{},
	}
)

// RegisterAdapter associates an Adapter with the runtime type of sample.
// Values of that type are classified as containers from then on. nil adapters
// are ignored. Registration is a process-setup concern; it is safe for
// concurrent use but not intended to race with in-flight walks.
func RegisterAdapter(sample any, a Adapter) {
	if a == nil || sample == nil {
		return
	}
	adapterMu.Lock()
	adapters[reflect.TypeOf(sample)] = a
	adapterMu.Unlock()
}

// containerIface bridges a value implementing Container to the Adapter shape
// so the walk core deals with a single calling convention.
type containerIface struct{}

func (containerIface) Traverse(c, acc any, fn TraverseFunc) (any, any, error) {
	return c.(Container).Traverse(acc, fn)
}

func (containerIface) Reduce(c, acc any, fn ReduceFunc) (any, error) {
	return c.(Container).Reduce(acc, fn)
}

// adapterFor classifies v: a Container implementation or a registered type is
// a container, anything else is a leaf. Classification depends only on the
// runtime type, never on the value's contents.
func adapterFor(v any) (Adapter, bool) {
	if _, ok := v.(Container); ok {
		return containerIface{}, true
	}
	if v == nil {
		return nil, false
	}
	adapterMu.RLock()
	a, ok := adapters[reflect.TypeOf(v)]
	adapterMu.RUnlock()
	return a, ok
}

// IsContainer reports whether v would be treated as a container by the engine.
func IsContainer(v any) bool {
	_, ok := adapterFor(v)
	return ok
}
