package sim

// PreemptivePriority dispatches the waiting process with the lowest priority
// value (lower = more urgent). An arrival with strictly higher priority than
// the running process preempts it immediately: the runner's remaining demand
// is frozen at its current consumption and it rejoins the ready set.
type PreemptivePriority struct {
	ready readyHeap
}

// NewPreemptivePriority creates a preemptive priority policy.
func NewPreemptivePriority() *PreemptivePriority {
	p := &PreemptivePriority{}
	p.ready.less = func(a, b *Process) bool { return a.Priority < b.Priority }
	return p
}

func (p *PreemptivePriority) Name() string { return PolicyPreemptivePriority }

func (p *PreemptivePriority) Enqueue(proc *Process) { p.ready.enqueue(proc) }

func (p *PreemptivePriority) SelectNext() *Process { return p.ready.dequeue() }

func (p *PreemptivePriority) Len() int { return p.ready.Len() }

func (p *PreemptivePriority) TimeSlice() int64 { return 0 }

func (p *PreemptivePriority) Preempts(arriving, running *Process) bool {
	return arriving.Priority < running.Priority
}
