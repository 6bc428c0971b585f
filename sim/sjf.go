package sim

import "container/heap"

// readyHeap is a min-heap ready set with a pluggable key comparison.
// Ties are broken by arrival time ascending, then process ID ascending,
// keeping selection deterministic for a fixed seed.
type readyHeap struct {
	procs []*Process
	less  func(a, b *Process) bool
}

func (h *readyHeap) Len() int { return len(h.procs) }

func (h *readyHeap) Less(i, j int) bool {
	a, b := h.procs[i], h.procs[j]
	if h.less(a, b) {
		return true
	}
	if h.less(b, a) {
		return false
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.ID < b.ID
}

func (h *readyHeap) Swap(i, j int) { h.procs[i], h.procs[j] = h.procs[j], h.procs[i] }

func (h *readyHeap) Push(x any) { h.procs = append(h.procs, x.(*Process)) }

func (h *readyHeap) Pop() any {
	old := h.procs
	n := len(old)
	p := old[n-1]
	h.procs = old[:n-1]
	return p
}

func (h *readyHeap) enqueue(p *Process) {
	heap.Push(h, p)
}

func (h *readyHeap) dequeue() *Process {
	if len(h.procs) == 0 {
		return nil
	}
	return heap.Pop(h).(*Process)
}

// SJF dispatches the waiting process with the smallest remaining demand.
// Non-preemptive: a newly arrived shorter process does not interrupt a
// running one, so remaining demand equals the full burst at selection time.
type SJF struct {
	ready readyHeap
}

// NewSJF creates a shortest-job-first policy.
func NewSJF() *SJF {
	s := &SJF{}
	s.ready.less = func(a, b *Process) bool { return a.Remaining < b.Remaining }
	return s
}

func (s *SJF) Name() string { return PolicySJF }

func (s *SJF) Enqueue(p *Process) { s.ready.enqueue(p) }

func (s *SJF) SelectNext() *Process { return s.ready.dequeue() }

func (s *SJF) Len() int { return s.ready.Len() }

func (s *SJF) TimeSlice() int64 { return 0 }

func (s *SJF) Preempts(_, _ *Process) bool { return false }
