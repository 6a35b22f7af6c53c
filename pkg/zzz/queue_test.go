package zzz

import "testing"

func pushResize(q *Queue, w, h int) bool {
	ev := q.Push(EventWindowResized)
	if ev == nil {
		return false
	}
	ev.Size.Width = w
	ev.Size.Height = h
	return true
}

func TestNewQueueDefaultCapacity(t *testing.T) {
	for _, c := range []int{0, -3} {
		if got := NewQueue(c).Cap(); got != DefaultQueueCapacity {
			t.Fatalf("NewQueue(%d): expected capacity %d, got %d", c, DefaultQueueCapacity, got)
		}
	}
	if got := NewQueue(8).Cap(); got != 8 {
		t.Fatalf("expected capacity 8, got %d", got)
	}
}

func TestQueueCapacityInvariant(t *testing.T) {
	const n = 5
	q := NewQueue(n)
	for i := 0; i < n; i++ {
		if q.Full() {
			t.Fatalf("queue reported full after %d pushes", i)
		}
		if !pushResize(q, i, i) {
			t.Fatalf("push %d rejected", i)
		}
	}
	if !q.Full() {
		t.Fatal("expected queue to be full")
	}
	if ev := q.Push(EventWindowClosed); ev != nil {
		t.Fatal("expected push on full queue to be rejected")
	}
	if q.Len() != n {
		t.Fatalf("expected %d queued events, got %d", n, q.Len())
	}
	if q.Dropped() != 1 {
		t.Fatalf("expected 1 dropped event, got %d", q.Dropped())
	}
	for i := 0; i < n; i++ {
		ev, ok := q.Next()
		if !ok || ev.Type != EventWindowResized || ev.Size.Width != i {
			t.Fatalf("event %d altered by rejected push: %#v", i, ev)
		}
	}
}

func TestQueueOverflowDropKeepsOldest(t *testing.T) {
	q := NewQueue(DefaultQueueCapacity)
	for i := 0; i < 64; i++ {
		if !pushResize(q, 100+i, 200+i) {
			t.Fatalf("resize %d rejected", i)
		}
	}
	if ev := q.Push(EventWindowClosed); ev != nil {
		t.Fatal("close event should have been dropped")
	}

	var got []Event
	for {
		ev, ok := q.Next()
		if !ok {
			break
		}
		got = append(got, ev)
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 events, got %d", len(got))
	}
	for i, ev := range got {
		if ev.Type != EventWindowResized {
			t.Fatalf("event %d: expected resize, got %v", i, ev.Type)
		}
		if ev.Size.Width != 100+i || ev.Size.Height != 200+i {
			t.Fatalf("event %d out of order: %dx%d", i, ev.Size.Width, ev.Size.Height)
		}
	}
}

func TestQueueFIFOAcrossWrap(t *testing.T) {
	q := NewQueue(4)
	next := 0
	want := 0
	// Interleave pushes and drains so the cursors wrap several times.
	for round := 0; round < 10; round++ {
		for i := 0; i < 3; i++ {
			if !pushResize(q, next, 0) {
				t.Fatalf("round %d: push rejected", round)
			}
			next++
		}
		for i := 0; i < 3; i++ {
			ev, ok := q.Next()
			if !ok {
				t.Fatalf("round %d: queue empty early", round)
			}
			if ev.Size.Width != want {
				t.Fatalf("expected event %d, got %d", want, ev.Size.Width)
			}
			want++
		}
	}
}

func TestQueueEmptySentinel(t *testing.T) {
	q := NewQueue(2)
	for i := 0; i < 3; i++ {
		ev, ok := q.Next()
		if ok {
			t.Fatal("expected no event")
		}
		if ev.Type != EventUnknown {
			t.Fatalf("expected sentinel, got %v", ev.Type)
		}
	}
	if q.Len() != 0 || q.Dropped() != 0 {
		t.Fatalf("draining empty queue changed state: len=%d dropped=%d", q.Len(), q.Dropped())
	}
	if !pushResize(q, 1, 1) || !pushResize(q, 2, 2) {
		t.Fatal("queue unusable after empty drains")
	}
}

func TestQueuePushZeroesSlot(t *testing.T) {
	q := NewQueue(1)
	ev := q.Push(EventKeyPressed)
	ev.Keyboard = KeyPayload{Key: KeyA, Scancode: 0x1e, Mods: ModShift}
	q.Next()

	ev = q.Push(EventCursorMoved)
	if ev.Keyboard != (KeyPayload{}) {
		t.Fatalf("reused slot not zeroed: %#v", ev.Keyboard)
	}
	if ev.Type != EventCursorMoved {
		t.Fatalf("expected CursorMoved, got %v", ev.Type)
	}
}

func TestQueueNextCopiesOut(t *testing.T) {
	q := NewQueue(2)
	ev := q.Push(EventFileDropped)
	ev.File.Paths = []string{"a.txt"}

	got, _ := q.Next()
	// The slot is released; a new push must not alias the drained copy.
	again := q.Push(EventFileDropped)
	again.File.Paths = []string{"b.txt"}
	if got.File.Paths[0] != "a.txt" {
		t.Fatalf("drained event aliased queue storage: %v", got.File.Paths)
	}
	if got.File.Count() != 1 {
		t.Fatalf("expected 1 path, got %d", got.File.Count())
	}
}

func TestQueueRejectsUnknown(t *testing.T) {
	q := NewQueue(2)
	if q.Push(EventUnknown) != nil {
		t.Fatal("EventUnknown must not be queued")
	}
	if q.Len() != 0 {
		t.Fatalf("expected empty queue, got %d", q.Len())
	}
}

func TestNilQueueIsNoop(t *testing.T) {
	var q *Queue
	if q.Push(EventWindowClosed) != nil {
		t.Fatal("nil queue returned a slot")
	}
	if ev, ok := q.Next(); ok || ev.Type != EventUnknown {
		t.Fatalf("nil queue returned an event: %#v", ev)
	}
	if q.Len() != 0 || q.Cap() != 0 || q.Full() || !q.Empty() {
		t.Fatal("nil queue reported non-empty state")
	}
	q.Reset()
}

func TestZeroQueueAllocatesDefault(t *testing.T) {
	var q Queue
	if q.Push(EventWindowRefresh) == nil {
		t.Fatal("zero queue rejected push")
	}
	if q.Cap() != DefaultQueueCapacity {
		t.Fatalf("expected capacity %d, got %d", DefaultQueueCapacity, q.Cap())
	}
}

func TestQueueReset(t *testing.T) {
	q := NewQueue(1)
	pushResize(q, 1, 1)
	q.Push(EventWindowClosed)
	q.Reset()
	if !q.Empty() || q.Dropped() != 0 {
		t.Fatalf("reset left state: len=%d dropped=%d", q.Len(), q.Dropped())
	}
	if !pushResize(q, 2, 2) {
		t.Fatal("push after reset rejected")
	}
}
