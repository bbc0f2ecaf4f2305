package Array_View

import "iter"

// Collection 有长度且可随机访问的数据源
//
// Collection is a sized random-access source of elements. View itself
// satisfies it.
type Collection[T any] interface {
	Len() int
	At(i int) T
}

// sourceKind
type sourceKind uint8

const (
	sourceEmpty sourceKind = iota
	sourceView             // immutable view: share or bulk copy
	sourceSlice            // contiguous window: bulk copy
	sourceColl             // sized random access: indexed copy
	sourceSeq              // one-shot sequence: element-by-element copy
)

// Source tags an input with its concrete copy capability once, at the API
// boundary. Every grow operation (append, insert, concat, join) dispatches
// on the tag to pick the fastest copy path available: contiguous bulk copy,
// then sized random-access copy, then element-by-element copy guarded by the
// double-enumeration check. The zero value is an empty source.
type Source[T any] struct {
	kind sourceKind
	view View[T]
	s    []T
	coll Collection[T]
	seq  iter.Seq[T]
}

// SliceSource wraps a contiguous window. Its contents are copied whenever
// the source is consumed, so the caller keeps ownership of s.
func SliceSource[T any](s []T) Source[T] {
	return Source[T]{kind: sourceSlice, s: s}
}

// CollectionSource wraps a sized random-access source.
func CollectionSource[T any](c Collection[T]) Source[T] {
	return Source[T]{kind: sourceColl, coll: c}
}

// SeqSource wraps an arbitrary sequence. The sequence must be restartable
// and yield the same elements on every pass; the dispatcher enumerates it
// once to size and once to copy.
func SeqSource[T any](seq iter.Seq[T]) Source[T] {
	return Source[T]{kind: sourceSeq, seq: seq}
}

// Source tags the view itself as an input for the grow operations.
func (v View[T]) Source() Source[T] {
	return Source[T]{kind: sourceView, view: v}
}

// measure returns the number of elements the source will produce. A sequence
// source is enumerated once to count; this is the first of the two passes
// guarded by the double-enumeration check.
func (s Source[T]) measure() (int, error) {
	switch s.kind {
	case sourceView:
		return s.view.Len(), nil
	case sourceSlice:
		return len(s.s), nil
	case sourceColl:
		if s.coll == nil {
			return 0, ErrNilSource
		}
		return s.coll.Len(), nil
	case sourceSeq:
		if s.seq == nil {
			return 0, ErrNilSource
		}
		n := 0
		for range s.seq {
			n++
		}
		return n, nil
	}
	return 0, nil
}

// copyTo fills dst with the source's elements, where n is the count measure
// reported. A source that produces a different count on this second pass
// fails with ErrInconsistentSequence: it violated the stability assumption
// that let the dispatcher avoid buffering.
func (s Source[T]) copyTo(dst []T, n int) error {
	switch s.kind {
	case sourceView:
		copy(dst, s.view.items)
	case sourceSlice:
		copy(dst, s.s)
	case sourceColl:
		if got := s.coll.Len(); got != n {
			return errInconsistent(n, got)
		}
		for i := 0; i < n; i++ {
			dst[i] = s.coll.At(i)
		}
	case sourceSeq:
		got := 0
		for item := range s.seq {
			if got < n {
				dst[got] = item
			}
			got++
		}
		if got != n {
			return errInconsistent(n, got)
		}
	}
	return nil
}

// materialize renders the source as a View, sharing storage when it already
// is one.
func (s Source[T]) materialize() (View[T], error) {
	if s.kind == sourceView {
		return s.view, nil
	}
	n, err := s.measure()
	if err != nil {
		return View[T]{}, err
	}
	if n == 0 {
		return View[T]{}, nil
	}
	buf := make([]T, n)
	if err := s.copyTo(buf, n); err != nil {
		return View[T]{}, err
	}
	return adopt(buf), nil
}
