package sim

import "container/heap"

// EventHeap is the time-ordered queue of pending events. Ordering is fully
// deterministic: timestamp, then event-type priority, then event ID
// (insertion order), so a fixed seed always replays the same run.
type EventHeap struct {
	events eventSlice
}

// NewEventHeap creates an empty event heap.
func NewEventHeap() *EventHeap {
	return &EventHeap{events: make(eventSlice, 0)}
}

// Len returns the number of pending events.
func (h *EventHeap) Len() int { return len(h.events) }

// Schedule adds an event to the heap.
func (h *EventHeap) Schedule(e Event) {
	heap.Push(&h.events, e)
}

// PopNext removes and returns the earliest event, or nil when empty.
func (h *EventHeap) PopNext() Event {
	if len(h.events) == 0 {
		return nil
	}
	return heap.Pop(&h.events).(Event)
}

// Peek returns the earliest event without removing it, or nil when empty.
func (h *EventHeap) Peek() Event {
	if len(h.events) == 0 {
		return nil
	}
	return h.events[0]
}

// eventSlice implements heap.Interface.
type eventSlice []Event

func (s eventSlice) Len() int { return len(s) }

func (s eventSlice) Less(i, j int) bool {
	ei, ej := s[i], s[j]
	if ei.Timestamp() != ej.Timestamp() {
		return ei.Timestamp() < ej.Timestamp()
	}
	pi, pj := EventTypePriority[ei.Type()], EventTypePriority[ej.Type()]
	if pi != pj {
		return pi < pj
	}
	return ei.EventID() < ej.EventID()
}

func (s eventSlice) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s *eventSlice) Push(x any) { *s = append(*s, x.(Event)) }

func (s *eventSlice) Pop() any {
	old := *s
	n := len(old)
	e := old[n-1]
	*s = old[:n-1]
	return e
}
