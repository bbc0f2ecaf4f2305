// Package Array_View provides an immutable, zero-copy-sliceable view over a
// contiguous block of elements, the construction machinery to build one
// cheaply from many kinds of sources, and a small cache layer for sharing
// materialized views.
package Array_View

import "iter"

// View 是一段连续元素上的不可变窗口
//
// View is an immutable window over a contiguous block of elements. The
// backing array is never written after construction, so distinct Views may
// be read concurrently without synchronization. The zero value is the
// canonical empty View and needs no backing array. All "mutating"
// operations return a new View.
type View[T any] struct {
	items []T
}

// Of copies the given elements into a new View.
func Of[T any](items ...T) View[T] {
	return View[T]{items: cloneItems(items)}
}

// FromSlice copies s into a new View so later writes to s cannot be observed.
func FromSlice[T any](s []T) View[T] {
	return View[T]{items: cloneItems(s)}
}

// FromSliceRange copies the window s[offset:offset+length] into a new View.
func FromSliceRange[T any](s []T, offset, length int) (View[T], error) {
	if err := checkRange(offset, length, len(s)); err != nil {
		return View[T]{}, err
	}
	return View[T]{items: cloneItems(s[offset : offset+length])}, nil
}

// FromView returns a View sharing v's storage. O(1): an immutable view never
// needs to be copied again.
func FromView[T any](v View[T]) View[T] {
	return v
}

// FromCollection copies a sized random-access source in one indexed pass.
// A collection that resizes while being copied fails with
// ErrInconsistentSequence.
func FromCollection[T any](c Collection[T]) (View[T], error) {
	if c == nil {
		return View[T]{}, ErrNilSource
	}
	n := c.Len()
	if n == 0 {
		return View[T]{}, nil
	}
	buf := make([]T, n)
	for i := 0; i < n; i++ {
		buf[i] = c.At(i)
	}
	if got := c.Len(); got != n {
		return View[T]{}, errInconsistent(n, got)
	}
	return adopt(buf), nil
}

// FromSeq materializes an arbitrary sequence of unknown size in one full pass.
func FromSeq[T any](seq iter.Seq[T]) (View[T], error) {
	if seq == nil {
		return View[T]{}, ErrNilSource
	}
	var buf []T
	for item := range seq {
		buf = append(buf, item)
	}
	return adopt(buf), nil
}

// FromSeqRange captures seq[offset:offset+length] in a single bounded pass,
// stopping as soon as the window is full.
func FromSeqRange[T any](seq iter.Seq[T], offset, length int) (View[T], error) {
	if seq == nil {
		return View[T]{}, ErrNilSource
	}
	if offset < 0 {
		return View[T]{}, errNegative("offset", offset)
	}
	if length < 0 {
		return View[T]{}, errNegative("length", length)
	}
	buf := make([]T, 0, length)
	seen := 0
	for item := range seq {
		if seen < offset {
			seen++
			continue
		}
		if len(buf) < length {
			buf = append(buf, item)
		}
		seen++
		if len(buf) == length {
			break
		}
	}
	if seen < offset {
		return View[T]{}, errOffsetBeyond(offset, seen)
	}
	if len(buf) < length {
		return View[T]{}, errSpanPastEnd(offset, length, seen)
	}
	return adopt(buf), nil
}

// FromSeqTail captures length elements starting fromEnd elements before the
// end of seq. The range is anchored at the far end, so a full count is
// unavoidable: pass one counts, pass two copies. A sequence that yields a
// different count on the second pass fails with ErrInconsistentSequence.
func FromSeqTail[T any](seq iter.Seq[T], fromEnd, length int) (View[T], error) {
	if seq == nil {
		return View[T]{}, ErrNilSource
	}
	if fromEnd < 0 {
		return View[T]{}, errNegative("fromEnd", fromEnd)
	}
	if length < 0 {
		return View[T]{}, errNegative("length", length)
	}
	total := 0
	for range seq {
		total++
	}
	if fromEnd > total {
		return View[T]{}, errOffsetBeyond(total-fromEnd, total)
	}
	offset := total - fromEnd
	if offset+length > total {
		return View[T]{}, errSpanPastEnd(offset, length, total)
	}
	buf := make([]T, 0, length)
	seen := 0
	for item := range seq {
		if seen >= offset && len(buf) < length {
			buf = append(buf, item)
		}
		seen++
	}
	// The copy pass must run to the end: extra elements would shift the tail.
	if seen != total {
		return View[T]{}, errInconsistent(total, seen)
	}
	return adopt(buf), nil
}

// adopt wraps a freshly allocated, fully populated buffer without copying.
// Callers must hold the only reference to buf; this is never reachable with
// an externally supplied slice.
func adopt[T any](buf []T) View[T] {
	return View[T]{items: buf}
}

// Len returns the number of elements in the view's window.
func (v View[T]) Len() int {
	return len(v.items)
}

// IsEmpty reports whether the view holds no elements.
func (v View[T]) IsEmpty() bool {
	return len(v.items) == 0
}

// At returns the element at position i. Like a Go slice, an index outside
// [0, Len) panics.
func (v View[T]) At(i int) T {
	return v.items[i]
}

// AtFromEnd returns the element i positions before the end; AtFromEnd(0) is
// the last element.
func (v View[T]) AtFromEnd(i int) T {
	return v.items[len(v.items)-1-i]
}

// ItemRef returns a pointer to the element at position i, avoiding a copy of
// large element values. The pointee is shared with every view over the same
// backing array and must not be written.
func (v View[T]) ItemRef(i int) *T {
	return &v.items[i]
}

// Slice returns the half-open window [offset, offset+length) as a new View
// sharing the same backing array. O(1).
func (v View[T]) Slice(offset, length int) (View[T], error) {
	if err := checkRange(offset, length, len(v.items)); err != nil {
		return View[T]{}, err
	}
	// Capacity is clipped so no later append can reach the shared array.
	return View[T]{items: v.items[offset : offset+length : offset+length]}, nil
}

// SliceFrom returns the window from offset to the end of the view.
func (v View[T]) SliceFrom(offset int) (View[T], error) {
	if offset < 0 {
		return View[T]{}, errNegative("offset", offset)
	}
	if offset > len(v.items) {
		return View[T]{}, errOffsetBeyond(offset, len(v.items))
	}
	return v.Slice(offset, len(v.items)-offset)
}

// SliceFromEnd returns the window of the given length starting fromEnd
// elements before the end of the view.
func (v View[T]) SliceFromEnd(fromEnd, length int) (View[T], error) {
	if fromEnd < 0 {
		return View[T]{}, errNegative("fromEnd", fromEnd)
	}
	if fromEnd > len(v.items) {
		return View[T]{}, errOffsetBeyond(len(v.items)-fromEnd, len(v.items))
	}
	return v.Slice(len(v.items)-fromEnd, length)
}

// ToSlice returns a copy of the window to prevent external mutation.
func (v View[T]) ToSlice() []T {
	return cloneItems(v.items)
}

// All returns a restartable range-over-func sequence of the window's
// elements in index order.
func (v View[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.items {
			if !yield(item) {
				return
			}
		}
	}
}

// cloneItems is a small helper used to enforce immutability.
func cloneItems[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	c := make([]T, len(s))
	copy(c, s)
	return c
}
