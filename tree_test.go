package treema_test

import (
	"errors"
	"reflect"
	"testing"

	treema "github.com/reoring/treema"
)

func TestMap_IncrementSequence(t *testing.T) {
	in := []any{1, 2, 3}
	out, err := treema.Map(in, func(leaf any) (any, error) { return leaf.(int) + 1, nil })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(out, []any{2, 3, 4}) {
		t.Fatalf("expected [2 3 4], got %v", out)
	}
}

func TestMap_PreservesShapeAcrossMixedContainers(t *testing.T) {
	in := []any{
		1,
		treema.Tuple{2, 3, map[string]any{"a": 4, "b": 5}},
		[]any{6},
	}
	out, err := treema.Map(in, func(leaf any) (any, error) { return leaf.(int) * 10, nil })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []any{
		10,
		treema.Tuple{20, 30, map[string]any{"a": 40, "b": 50}},
		[]any{60},
	}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("expected %v, got %v", want, out)
	}
	// the tuple must come back as a Tuple, not []any
	if _, ok := out.([]any)[1].(treema.Tuple); !ok {
		t.Fatalf("expected Tuple to keep its identity, got %T", out.([]any)[1])
	}
}

func TestMap_BareLeaf(t *testing.T) {
	out, err := treema.Map("x", func(leaf any) (any, error) { return leaf.(string) + "!", nil })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "x!" {
		t.Fatalf("expected x!, got %v", out)
	}
}

func TestMap_DoesNotMutateInput(t *testing.T) {
	in := []any{map[string]any{"a": 1}, treema.Tuple{2}}
	_, err := treema.Map(in, func(leaf any) (any, error) { return leaf.(int) + 1, nil })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(in, []any{map[string]any{"a": 1}, treema.Tuple{2}}) {
		t.Fatalf("input was mutated: %v", in)
	}
}

func TestReduce_SumsLeavesDepthFirst(t *testing.T) {
	in := []any{treema.Tuple{1, 2}, map[string]any{"a": 3}}
	sum, err := treema.Reduce(in, 0, func(leaf any, acc int) (int, error) {
		return acc + leaf.(int), nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum != 6 {
		t.Fatalf("expected 6, got %d", sum)
	}
}

func TestMapReduce_ThreadsAccumulatorInLeafOrder(t *testing.T) {
	in := []any{1, treema.Tuple{2, 3}, map[string]any{"b": 5, "a": 4}}
	out, seen, err := treema.MapReduce(in, []int(nil), func(leaf any, acc []int) (any, []int, error) {
		return leaf.(int) * 2, append(acc, leaf.(int)), nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(seen, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("expected visit order [1 2 3 4 5], got %v", seen)
	}
	want := []any{2, treema.Tuple{4, 6}, map[string]any{"a": 8, "b": 10}}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("expected %v, got %v", want, out)
	}
}

func TestLeaves_CanonicalOrder(t *testing.T) {
	in := []any{1, treema.Tuple{2, 3, map[string]any{"b": 5, "a": 4}}, []any{6}}
	ls, err := treema.Leaves(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(ls, []any{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("expected [1 2 3 4 5 6], got %v", ls)
	}
}

func TestFlatMap_EqualsLeavesUnderIdentity(t *testing.T) {
	in := map[string]any{"z": []any{1, 2}, "a": treema.Tuple{3}}
	flat, err := treema.FlatMap(in, func(leaf any) (any, error) { return leaf, nil })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ls, err := treema.Leaves(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(flat, ls) {
		t.Fatalf("FlatMap(id)=%v differs from Leaves=%v", flat, ls)
	}
	// mapping children in ascending key order: "a" before "z"
	if !reflect.DeepEqual(ls, []any{3, 1, 2}) {
		t.Fatalf("expected [3 1 2], got %v", ls)
	}
}

func TestFlatMapReduce_FlattensAndThreads(t *testing.T) {
	in := []any{1, treema.Tuple{2, 3}}
	flat, sum, err := treema.FlatMapReduce(in, 0, func(leaf any, acc int) (any, int, error) {
		n := leaf.(int)
		return n * n, acc + n, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(flat, []any{1, 4, 9}) {
		t.Fatalf("expected [1 4 9], got %v", flat)
	}
	if sum != 6 {
		t.Fatalf("expected sum 6, got %d", sum)
	}
}

func TestLeafFunctionErrorsPropagateUnmodified(t *testing.T) {
	boom := errors.New("boom")
	in := []any{1, 2, 3}
	_, err := treema.Map(in, func(leaf any) (any, error) {
		if leaf.(int) == 2 {
			return nil, boom
		}
		return leaf, nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the caller error unchanged, got %v", err)
	}
	if treema.IsStructuralMismatch(err) {
		t.Fatalf("caller error must not look like a structural mismatch")
	}
}
