package Array_View

import (
	"errors"
	"reflect"
	"slices"
	"testing"
)

func TestAppend(t *testing.T) {
	v := Of(1, 2, 3)

	w := v.Append(4)
	if w.Len() != v.Len()+1 {
		t.Fatalf("Len = %d, want %d", w.Len(), v.Len()+1)
	}
	if got := w.At(3); got != 4 {
		t.Errorf("At(3) = %d, want 4", got)
	}
	if want := []int{1, 2, 3}; !reflect.DeepEqual(v.ToSlice(), want) {
		t.Errorf("original changed to %v after Append", v.ToSlice())
	}
}

func TestPrependNeverWritesSharedBacking(t *testing.T) {
	base := Of(1, 2, 3, 4)
	s, err := base.Slice(1, 3)
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}

	p := s.Prepend(9)

	if want := []int{9, 2, 3, 4}; !reflect.DeepEqual(p.ToSlice(), want) {
		t.Errorf("Prepend = %v, want %v", p.ToSlice(), want)
	}
	// The slot just before the slice's window belongs to base; it must be
	// untouched.
	if want := []int{1, 2, 3, 4}; !reflect.DeepEqual(base.ToSlice(), want) {
		t.Errorf("shared backing array was written: base = %v", base.ToSlice())
	}
}

func TestInsertBoundariesCollapse(t *testing.T) {
	v := Of(2, 3)

	head, err := v.Insert(0, 1)
	if err != nil {
		t.Fatalf("Insert(0) failed: %v", err)
	}
	if !reflect.DeepEqual(head.ToSlice(), v.Prepend(1).ToSlice()) {
		t.Errorf("Insert at 0 should equal Prepend, got %v", head.ToSlice())
	}

	tail, err := v.Insert(v.Len(), 4)
	if err != nil {
		t.Fatalf("Insert(Len) failed: %v", err)
	}
	if !reflect.DeepEqual(tail.ToSlice(), v.Append(4).ToSlice()) {
		t.Errorf("Insert at Len should equal Append, got %v", tail.ToSlice())
	}

	mid, err := v.Insert(1, 9)
	if err != nil {
		t.Fatalf("Insert(1) failed: %v", err)
	}
	if want := []int{2, 9, 3}; !reflect.DeepEqual(mid.ToSlice(), want) {
		t.Errorf("Insert(1) = %v, want %v", mid.ToSlice(), want)
	}

	if _, err := v.Insert(3, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("index beyond Len: got %v, want ErrOutOfRange", err)
	}
	if _, err := v.Insert(-1, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("negative index: got %v, want ErrOutOfRange", err)
	}
}

func TestInsertAllFromEverySourceKind(t *testing.T) {
	v := Of(1, 4)
	want := []int{1, 2, 3, 4}

	fromSlice, err := v.InsertAll(1, SliceSource([]int{2, 3}))
	if err != nil {
		t.Fatalf("InsertAll(slice) failed: %v", err)
	}
	if !reflect.DeepEqual(fromSlice.ToSlice(), want) {
		t.Errorf("slice source = %v, want %v", fromSlice.ToSlice(), want)
	}

	fromView, err := v.InsertAll(1, Of(2, 3).Source())
	if err != nil {
		t.Fatalf("InsertAll(view) failed: %v", err)
	}
	if !reflect.DeepEqual(fromView.ToSlice(), want) {
		t.Errorf("view source = %v, want %v", fromView.ToSlice(), want)
	}

	fromColl, err := v.InsertAll(1, CollectionSource[int](&fixedColl{data: []int{2, 3}}))
	if err != nil {
		t.Fatalf("InsertAll(collection) failed: %v", err)
	}
	if !reflect.DeepEqual(fromColl.ToSlice(), want) {
		t.Errorf("collection source = %v, want %v", fromColl.ToSlice(), want)
	}

	fromSeq, err := v.InsertAll(1, SeqSource(slices.Values([]int{2, 3})))
	if err != nil {
		t.Fatalf("InsertAll(seq) failed: %v", err)
	}
	if !reflect.DeepEqual(fromSeq.ToSlice(), want) {
		t.Errorf("seq source = %v, want %v", fromSeq.ToSlice(), want)
	}
}

func TestAppendAll(t *testing.T) {
	v := Of(1, 2)

	w, err := v.AppendAll(SliceSource([]int{3, 4}))
	if err != nil {
		t.Fatalf("AppendAll failed: %v", err)
	}
	if want := []int{1, 2, 3, 4}; !reflect.DeepEqual(w.ToSlice(), want) {
		t.Errorf("AppendAll = %v, want %v", w.ToSlice(), want)
	}
}

func TestRemoveAll(t *testing.T) {
	v := Of(1, 2, 3, 4, 5, 6)
	even := func(x int) bool { return x%2 == 0 }

	kept := v.RemoveAll(even)
	if want := []int{1, 3, 5}; !reflect.DeepEqual(kept.ToSlice(), want) {
		t.Errorf("RemoveAll = %v, want %v", kept.ToSlice(), want)
	}

	// Nothing removed: same view back, no allocation.
	same := v.RemoveAll(func(x int) bool { return x > 100 })
	if same.ItemRef(0) != v.ItemRef(0) {
		t.Error("RemoveAll with no matches should return the receiver unchanged")
	}

	// Everything removed: canonical empty.
	empty := v.RemoveAll(func(x int) bool { return true })
	if !empty.IsEmpty() {
		t.Errorf("RemoveAll of everything = %v, want empty", empty.ToSlice())
	}
}

func TestConcat(t *testing.T) {
	empty, err := Concat[int]()
	if err != nil {
		t.Fatalf("Concat() failed: %v", err)
	}
	if !empty.IsEmpty() {
		t.Error("Concat of zero sources should be the canonical empty view")
	}

	v := Of(1, 2, 3)
	single, err := Concat(v.Source())
	if err != nil {
		t.Fatalf("Concat(v) failed: %v", err)
	}
	if single.ItemRef(0) != v.ItemRef(0) {
		t.Error("Concat of a single view should share its storage, not copy")
	}

	a, b := Of(1, 2), Of(3)
	joined, err := Concat(a.Source(), b.Source(), SliceSource([]int{4, 5}))
	if err != nil {
		t.Fatalf("Concat failed: %v", err)
	}
	if want := []int{1, 2, 3, 4, 5}; !reflect.DeepEqual(joined.ToSlice(), want) {
		t.Errorf("Concat = %v, want %v", joined.ToSlice(), want)
	}
}

func TestConcatInconsistentSeqSource(t *testing.T) {
	s := &growingSeq{n: 3}
	_, err := Concat(Of(1).Source(), SeqSource(s.seq()))
	if !errors.Is(err, ErrInconsistentSequence) {
		t.Errorf("got %v, want ErrInconsistentSequence", err)
	}
}

func TestJoin(t *testing.T) {
	a, b, c := Of(1), Of(2), Of(3)

	joined, err := Join(SliceSource([]int{0}), a.Source(), b.Source(), c.Source())
	if err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	if want := []int{1, 0, 2, 0, 3}; !reflect.DeepEqual(joined.ToSlice(), want) {
		t.Errorf("Join = %v, want %v", joined.ToSlice(), want)
	}

	// An empty delimiter degenerates to Concat.
	flat, err := Join(SliceSource([]int(nil)), a.Source(), b.Source(), c.Source())
	if err != nil {
		t.Fatalf("Join with empty delimiter failed: %v", err)
	}
	concatted, err := Concat(a.Source(), b.Source(), c.Source())
	if err != nil {
		t.Fatalf("Concat failed: %v", err)
	}
	if !reflect.DeepEqual(flat.ToSlice(), concatted.ToSlice()) {
		t.Errorf("Join with empty delimiter = %v, want Concat result %v", flat.ToSlice(), concatted.ToSlice())
	}

	none, err := Join(SliceSource([]int{0}))
	if err != nil {
		t.Fatalf("Join of zero sources failed: %v", err)
	}
	if !none.IsEmpty() {
		t.Error("Join of zero sources should be the canonical empty view")
	}
}
