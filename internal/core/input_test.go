package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionConfirm) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionConfirm)
	f.Pointer = &PointerEvent{Phase: PointerBegin}
	if !f.Has(ActionConfirm) {
		t.Error("Has(ActionConfirm) should be true after Set")
	}

	f.Clear()
	if f.Has(ActionConfirm) || f.Pointer != nil {
		t.Error("Clear should reset actions and pointer")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestPointerQueueCoalescesMoves(t *testing.T) {
	var q PointerQueue
	q.Push(PointerEvent{Phase: PointerBegin, Pos: V(1, 1)})
	q.Push(PointerEvent{Phase: PointerMove, Pos: V(2, 2)})
	q.Push(PointerEvent{Phase: PointerMove, Pos: V(3, 3)})
	q.Push(PointerEvent{Phase: PointerEnd, Pos: V(3, 3)})
	q.Push(PointerEvent{Phase: PointerMove, Pos: V(9, 9)})

	if q.Len() != 4 {
		t.Fatalf("Len() = %d, expected 4", q.Len())
	}

	expected := []PointerEvent{
		{Phase: PointerBegin, Pos: V(1, 1)},
		{Phase: PointerMove, Pos: V(3, 3)},
		{Phase: PointerEnd, Pos: V(3, 3)},
		{Phase: PointerMove, Pos: V(9, 9)},
	}
	for i, want := range expected {
		got, ok := q.Pop()
		if !ok {
			t.Fatalf("Pop() #%d returned nothing", i)
		}
		if got != want {
			t.Errorf("Pop() #%d = %+v, expected %+v", i, got, want)
		}
	}

	if _, ok := q.Pop(); ok {
		t.Error("Pop() on empty queue should return false")
	}
}

func TestPointerQueueReset(t *testing.T) {
	var q PointerQueue
	q.Push(PointerEvent{Phase: PointerBegin})
	q.Reset()
	if q.Len() != 0 {
		t.Errorf("Len() after Reset = %d, expected 0", q.Len())
	}
}
