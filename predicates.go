package treema

// Truthy is the default predicate for All and Any: only nil and false are
// falsy, every other leaf is truthy.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// All reports whether pred holds for every leaf of v. A nil pred defaults to
// Truthy. A tree with no leaves is vacuously true.
func All(v any, pred func(leaf any) bool) bool {
	if pred == nil {
		pred = Truthy
	}
	out, err := walkReduce(v, true, func(leaf, acc any) (any, error) {
		return acc.(bool) && pred(leaf), nil
	})
	if err != nil {
		return false
	}
	return out.(bool)
}

// Any reports whether pred holds for at least one leaf of v. A nil pred
// defaults to Truthy.
func Any(v any, pred func(leaf any) bool) bool {
	if pred == nil {
		pred = Truthy
	}
	out, err := walkReduce(v, false, func(leaf, acc any) (any, error) {
		return acc.(bool) || pred(leaf), nil
	})
	if err != nil {
		return false
	}
	return out.(bool)
}

// Empty reports whether v contains no leaves at all; a container holding only
// empty containers is empty.
func Empty(v any) bool {
	out, err := walkReduce(v, 0, func(leaf, acc any) (any, error) {
		return acc.(int) + 1, nil
	})
	if err != nil {
		return false
	}
	return out.(int) == 0
}

// Each applies fn to every leaf of v for side effect only, discarding results.
// It returns nil unless fn itself fails.
func Each(v any, fn func(leaf any) error) error {
	_, err := walkReduce(v, nil, func(leaf, acc any) (any, error) {
		return acc, fn(leaf)
	})
	return err
}
