package treema

import (
	"fmt"

	"github.com/reoring/treema/i18n"
)

// ZipWith combines two trees leaf by leaf and rebuilds the result in the left
// tree's shape. The trees may use different container kinds at corresponding
// positions; only their leaf sequences have to line up. The right tree is
// flattened eagerly into a queue of leaves, then the left tree is walked
// normally, each left leaf consuming the head of the queue. Congruence is
// validated by leaf count and order, not full nesting topology: two trees with
// identical flattened leaf sequences but different nesting zip successfully
// and the result takes the left tree's containers.
//
// It fails with a structural_mismatch Issue when the leaf counts differ, or
// when one of the two values is a leaf while the other is a container. No
// partial result is ever returned.
func ZipWith(left, right any, fn func(l, r any) (any, error)) (any, error) {
	_, lok := adapterFor(left)
	_, rok := adapterFor(right)
	if lok != rok {
		return nil, kindMismatch(lok)
	}
	if !lok {
		return fn(left, right)
	}
	queue, err := Leaves(right)
	if err != nil {
		return nil, err
	}
	rightN := len(queue)
	out, rest, err := walkTraverse(left, queue, func(leaf, acc any) (any, any, error) {
		q := acc.([]any)
		if len(q) == 0 {
			return nil, nil, countMismatch(left, rightN)
		}
		nv, err := fn(leaf, q[0])
		if err != nil {
			return nil, nil, err
		}
		return nv, q[1:], nil
	})
	if err != nil {
		return nil, err
	}
	if len(rest.([]any)) != 0 {
		return nil, countMismatch(left, rightN)
	}
	return out, nil
}

// zipAcc carries the unconsumed right-leaf queue and the caller accumulator
// through the left-tree walk.
type zipAcc[A any] struct {
	queue []any
	acc   A
}

// ZipReduce combines two trees leaf by leaf like ZipWith but folds the
// combined values into acc instead of rebuilding a structure. The same
// structural_mismatch rules apply; on failure the accumulator is discarded.
func ZipReduce[A any](left, right any, acc A, fn func(l, r any, acc A) (A, error)) (A, error) {
	var zero A
	_, lok := adapterFor(left)
	_, rok := adapterFor(right)
	if lok != rok {
		return zero, kindMismatch(lok)
	}
	if !lok {
		return fn(left, right, acc)
	}
	queue, err := Leaves(right)
	if err != nil {
		return zero, err
	}
	rightN := len(queue)
	out, err := walkReduce(left, zipAcc[A]{queue: queue, acc: acc}, func(leaf, acc any) (any, error) {
		st := acc.(zipAcc[A])
		if len(st.queue) == 0 {
			return nil, countMismatch(left, rightN)
		}
		nacc, err := fn(leaf, st.queue[0], st.acc)
		if err != nil {
			return nil, err
		}
		return zipAcc[A]{queue: st.queue[1:], acc: nacc}, nil
	})
	if err != nil {
		return zero, err
	}
	st := out.(zipAcc[A])
	if len(st.queue) != 0 {
		return zero, countMismatch(left, rightN)
	}
	return st.acc, nil
}

// countMismatch builds the leaf-count mismatch error. The left count is
// recomputed for the message; the walk that detected the mismatch has already
// been abandoned and operations are pure, so the extra pass is safe.
func countMismatch(left any, rightN int) Issues {
	leftN := 0
	if ls, err := Leaves(left); err == nil {
		leftN = len(ls)
	}
	return Issues{Issue{
		Path:    "/",
		Code:    CodeStructuralMismatch,
		Message: i18n.T(CodeStructuralMismatch, nil),
		Hint:    fmt.Sprintf("left has %d leaves, right has %d", leftN, rightN),
		Offset:  -1,
		Params:  map[string]any{"left": leftN, "right": rightN},
	}}
}

// kindMismatch builds the leaf-vs-container mismatch error. leftIsContainer
// tells which side was the container.
func kindMismatch(leftIsContainer bool) Issues {
	lk, rk := "leaf", "container"
	if leftIsContainer {
		lk, rk = "container", "leaf"
	}
	return Issues{Issue{
		Path:    "/",
		Code:    CodeStructuralMismatch,
		Message: i18n.T(CodeStructuralMismatch, nil),
		Hint:    fmt.Sprintf("left is a %s, right is a %s", lk, rk),
		Offset:  -1,
		Params:  map[string]any{"left": lk, "right": rk},
	}}
}
