package Array_View

// ByteView holds an immutable view of bytes, specialized over View[byte].
// It is the value type the cache layer stores and hands out.
type ByteView struct {
	v View[byte]
}

// BytesOf copies b into a new ByteView.
func BytesOf(b []byte) ByteView {
	return ByteView{v: FromSlice(b)}
}

func (b ByteView) Len() int {
	return b.v.Len()
}

// ByteSlice returns a copy to prevent external mutation.
func (b ByteView) ByteSlice() []byte {
	return b.v.ToSlice()
}

func (b ByteView) String() string {
	return string(b.v.items)
}

// Equal reports whether two views hold the same bytes.
func (b ByteView) Equal(other ByteView) bool {
	return string(b.v.items) == string(other.v.items)
}

// View exposes the underlying generic view; it shares storage with b.
func (b ByteView) View() View[byte] {
	return b.v
}
