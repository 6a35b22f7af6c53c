package zzz

// DefaultQueueCapacity is the number of events a Queue holds when no
// capacity is requested.
const DefaultQueueCapacity = 64

// Queue is a fixed-capacity FIFO of events. Backends reserve slots with Push
// and applications drain with Next once per frame.
//
// A full queue rejects new events: the oldest unread events are kept and the
// newest is dropped. Queue is not safe for concurrent use; it belongs to the
// thread that pumps the window.
type Queue struct {
	events  []Event
	head    int // next read
	tail    int // next write
	count   int
	dropped uint64
}

// NewQueue allocates a queue holding up to capacity events. A capacity of
// zero or less selects DefaultQueueCapacity.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &Queue{events: make([]Event, capacity)}
}

// Push reserves the next slot, zeroes it and tags it with t. The caller fills
// the payload through the returned pointer before touching the queue again.
// It returns nil, leaving the queue unchanged, when the queue is full or t is
// EventUnknown.
func (q *Queue) Push(t EventType) *Event {
	if q == nil || t == EventUnknown {
		return nil
	}
	if q.events == nil {
		q.events = make([]Event, DefaultQueueCapacity)
	}
	if q.count == len(q.events) {
		q.dropped++
		return nil
	}
	ev := &q.events[q.tail]
	*ev = Event{Type: t}
	q.tail = (q.tail + 1) % len(q.events)
	q.count++
	return ev
}

// Next removes and returns the oldest event. On an empty queue it returns the
// zero Event, whose Type is EventUnknown, and false.
func (q *Queue) Next() (Event, bool) {
	if q == nil || q.count == 0 {
		return Event{}, false
	}
	ev := q.events[q.head]
	q.events[q.head] = Event{}
	q.head = (q.head + 1) % len(q.events)
	q.count--
	return ev, true
}

func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return q.count
}

func (q *Queue) Cap() int {
	if q == nil {
		return 0
	}
	if q.events == nil {
		return DefaultQueueCapacity
	}
	return len(q.events)
}

func (q *Queue) Empty() bool { return q.Len() == 0 }

func (q *Queue) Full() bool { return q != nil && q.count == q.Cap() }

// Dropped returns how many pushes were rejected because the queue was full.
func (q *Queue) Dropped() uint64 {
	if q == nil {
		return 0
	}
	return q.dropped
}

// Reset discards every pending event and the drop counter.
func (q *Queue) Reset() {
	if q == nil {
		return
	}
	clear(q.events)
	q.head, q.tail, q.count, q.dropped = 0, 0, 0, 0
}
