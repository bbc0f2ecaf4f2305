package Array_View

// NotFound is returned by the search operations when no match exists.
const NotFound = -1

// EqualFunc reports whether two elements are equal.
type EqualFunc[T any] func(a, b T) bool

// RefEqualFunc compares two elements through pointers, sparing a copy of
// large element values. Implementations must not write through either
// pointer. Results must agree with the by-value comparison for the same
// elements.
type RefEqualFunc[T any] func(a, b *T) bool

// IndexOf 在整个窗口中线性查找
//
// IndexOf returns the first position in the window where eq matches item,
// or NotFound.
func (v View[T]) IndexOf(item T, eq EqualFunc[T]) int {
	for i := range v.items {
		if eq(v.items[i], item) {
			return i
		}
	}
	return NotFound
}

// IndexOfRange restricts the scan to [start, start+count). Bounds are
// validated like slicing.
func (v View[T]) IndexOfRange(item T, start, count int, eq EqualFunc[T]) (int, error) {
	if err := checkRange(start, count, len(v.items)); err != nil {
		return NotFound, err
	}
	for i := start; i < start+count; i++ {
		if eq(v.items[i], item) {
			return i, nil
		}
	}
	return NotFound, nil
}

// IndexOfRef is IndexOf with a by-reference predicate. Semantically
// identical to the by-value variant; chosen purely for performance on large
// element types.
func (v View[T]) IndexOfRef(item *T, eq RefEqualFunc[T]) int {
	for i := range v.items {
		if eq(&v.items[i], item) {
			return i
		}
	}
	return NotFound
}

// IndexOfRefRange is IndexOfRange with a by-reference predicate.
func (v View[T]) IndexOfRefRange(item *T, start, count int, eq RefEqualFunc[T]) (int, error) {
	if err := checkRange(start, count, len(v.items)); err != nil {
		return NotFound, err
	}
	for i := start; i < start+count; i++ {
		if eq(&v.items[i], item) {
			return i, nil
		}
	}
	return NotFound, nil
}

// IndexOfAny returns the earliest position in [start, start+count) where
// the element equals any of the candidates.
func (v View[T]) IndexOfAny(candidates []T, start, count int, eq EqualFunc[T]) (int, error) {
	if err := checkRange(start, count, len(v.items)); err != nil {
		return NotFound, err
	}
	for i := start; i < start+count; i++ {
		for j := range candidates {
			if eq(v.items[i], candidates[j]) {
				return i, nil
			}
		}
	}
	return NotFound, nil
}

// IndexOfSlice returns the first position in [start, start+count) where the
// ordered subsequence sub occurs in full. A partial match straddling
// start+count does not count. An empty sub matches at start.
func (v View[T]) IndexOfSlice(sub []T, start, count int, eq EqualFunc[T]) (int, error) {
	if err := checkRange(start, count, len(v.items)); err != nil {
		return NotFound, err
	}
	if len(sub) == 0 {
		return start, nil
	}
	for i := start; i+len(sub) <= start+count; i++ {
		if v.matchesAt(i, sub, eq) {
			return i, nil
		}
	}
	return NotFound, nil
}

// IndexOfAnySlice returns the earliest position in [start, start+count)
// where any of the candidate subsequences occurs in full. Ties at the same
// position go to the earliest candidate in caller order.
func (v View[T]) IndexOfAnySlice(subs [][]T, start, count int, eq EqualFunc[T]) (int, error) {
	if err := checkRange(start, count, len(v.items)); err != nil {
		return NotFound, err
	}
	for i := start; i < start+count; i++ {
		for _, sub := range subs {
			if len(sub) == 0 {
				return i, nil
			}
			if i+len(sub) <= start+count && v.matchesAt(i, sub, eq) {
				return i, nil
			}
		}
	}
	return NotFound, nil
}

func (v View[T]) matchesAt(i int, sub []T, eq EqualFunc[T]) bool {
	for j := range sub {
		if !eq(v.items[i+j], sub[j]) {
			return false
		}
	}
	return true
}

// Index is IndexOf with the natural equality of comparable element types.
func Index[T comparable](v View[T], item T) int {
	return v.IndexOf(item, func(a, b T) bool { return a == b })
}

// IndexSlice is IndexOfSlice over the full window with natural equality.
func IndexSlice[T comparable](v View[T], sub []T) int {
	i, _ := v.IndexOfSlice(sub, 0, v.Len(), func(a, b T) bool { return a == b })
	return i
}
