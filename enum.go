package Array_View

import "fmt"

// Enumerator 在视图窗口上按序前进的游标
//
// Enumerator walks a View's window in index order: forward-only, single
// threaded, restartable via Reset. It covers the view's own start/length
// window, never the backing array's full extent.
type Enumerator[T any] struct {
	view View[T]
	pos  int // -1 before the first advance, view.Len() once exhausted
}

// Enumerate returns a cursor positioned before the first element.
func (v View[T]) Enumerate() *Enumerator[T] {
	return &Enumerator[T]{view: v, pos: -1}
}

// Next advances to the following element and reports whether one exists.
// Once it returns false it keeps returning false until Reset.
func (e *Enumerator[T]) Next() bool {
	if e.pos < e.view.Len() {
		e.pos++
	}
	return e.pos < e.view.Len()
}

// Current returns the element under the cursor. Before the first Next, or
// after Next has returned false, it fails with ErrInvalidState.
func (e *Enumerator[T]) Current() (T, error) {
	var zero T
	if e.pos < 0 {
		return zero, fmt.Errorf("%w: Next has not been called", ErrInvalidState)
	}
	if e.pos >= e.view.Len() {
		return zero, fmt.Errorf("%w: enumeration already finished", ErrInvalidState)
	}
	return e.view.items[e.pos], nil
}

// Reset returns the cursor to its pre-first-advance state.
func (e *Enumerator[T]) Reset() {
	e.pos = -1
}
