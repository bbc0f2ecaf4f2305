package Array_View

// Append returns a new View with item added after the window. O(n): the
// result owns a fresh buffer of length Len+1.
func (v View[T]) Append(item T) View[T] {
	buf := make([]T, len(v.items)+1)
	copy(buf, v.items)
	buf[len(v.items)] = item
	return adopt(buf)
}

// Prepend returns a new View with item placed before the window. The
// destination buffer is allocated and fully owned before the first write;
// the shared backing array is never touched.
func (v View[T]) Prepend(item T) View[T] {
	buf := make([]T, len(v.items)+1)
	buf[0] = item
	copy(buf[1:], v.items)
	return adopt(buf)
}

// AppendAll returns a new View with all of src's elements after the window.
// O(n+m) through the copy dispatcher.
func (v View[T]) AppendAll(src Source[T]) (View[T], error) {
	return v.InsertAll(len(v.items), src)
}

// Insert returns a new View with item at position i. The boundary indices 0
// and Len collapse to Prepend and Append.
func (v View[T]) Insert(i int, item T) (View[T], error) {
	if i < 0 || i > len(v.items) {
		return View[T]{}, errOffsetBeyond(i, len(v.items))
	}
	buf := make([]T, len(v.items)+1)
	copy(buf, v.items[:i])
	buf[i] = item
	copy(buf[i+1:], v.items[i:])
	return adopt(buf), nil
}

// InsertAll returns a new View with all of src's elements spliced in at
// position i. One destination allocation sized for the final result; each
// input is copied with its fastest path.
func (v View[T]) InsertAll(i int, src Source[T]) (View[T], error) {
	if i < 0 || i > len(v.items) {
		return View[T]{}, errOffsetBeyond(i, len(v.items))
	}
	m, err := src.measure()
	if err != nil {
		return View[T]{}, err
	}
	if m == 0 {
		return v, nil
	}
	buf := make([]T, len(v.items)+m)
	copy(buf, v.items[:i])
	if err := src.copyTo(buf[i:i+m], m); err != nil {
		return View[T]{}, err
	}
	copy(buf[i+m:], v.items[i:])
	return adopt(buf), nil
}

// RemoveAll returns a View without the elements matching pred. When nothing
// matches the receiver is returned unchanged with no allocation; when
// everything matches the result is the canonical empty View; otherwise the
// result owns a buffer of exactly the retained length.
func (v View[T]) RemoveAll(pred func(T) bool) View[T] {
	first := -1
	for i, item := range v.items {
		if pred(item) {
			first = i
			break
		}
	}
	if first == -1 {
		return v
	}
	kept := first
	for i := first + 1; i < len(v.items); i++ {
		if !pred(v.items[i]) {
			kept++
		}
	}
	if kept == 0 {
		return View[T]{}
	}
	buf := make([]T, 0, kept)
	buf = append(buf, v.items[:first]...)
	for i := first + 1; i < len(v.items); i++ {
		if !pred(v.items[i]) {
			buf = append(buf, v.items[i])
		}
	}
	return adopt(buf)
}

// Concat builds one View from the given sources with a single destination
// allocation sized as the sum of the source lengths. Zero sources yield the
// canonical empty View; a single View source is returned as is, without a
// copy, since its buffer is already contiguous and owned.
func Concat[T any](sources ...Source[T]) (View[T], error) {
	switch len(sources) {
	case 0:
		return View[T]{}, nil
	case 1:
		if sources[0].kind == sourceView {
			return sources[0].view, nil
		}
	}
	sizes := make([]int, len(sources))
	total := 0
	for i, src := range sources {
		n, err := src.measure()
		if err != nil {
			return View[T]{}, err
		}
		sizes[i] = n
		total += n
	}
	if total == 0 {
		return View[T]{}, nil
	}
	buf := make([]T, total)
	at := 0
	for i, src := range sources {
		if err := src.copyTo(buf[at:at+sizes[i]], sizes[i]); err != nil {
			return View[T]{}, err
		}
		at += sizes[i]
	}
	return adopt(buf), nil
}

// Join interleaves delim between each pair of adjacent sources and builds
// the result in one allocation. An empty delimiter degenerates to Concat.
func Join[T any](delim Source[T], sources ...Source[T]) (View[T], error) {
	sep, err := delim.materialize()
	if err != nil {
		return View[T]{}, err
	}
	if sep.Len() == 0 {
		return Concat(sources...)
	}
	if len(sources) == 0 {
		return View[T]{}, nil
	}
	if len(sources) == 1 && sources[0].kind == sourceView {
		return sources[0].view, nil
	}
	sizes := make([]int, len(sources))
	total := (len(sources) - 1) * sep.Len()
	for i, src := range sources {
		n, err := src.measure()
		if err != nil {
			return View[T]{}, err
		}
		sizes[i] = n
		total += n
	}
	buf := make([]T, total)
	at := 0
	for i, src := range sources {
		if i > 0 {
			at += copy(buf[at:], sep.items)
		}
		if err := src.copyTo(buf[at:at+sizes[i]], sizes[i]); err != nil {
			return View[T]{}, err
		}
		at += sizes[i]
	}
	return adopt(buf), nil
}
