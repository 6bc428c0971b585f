package sim

// RoundRobin grants each dispatch a fixed quantum. A process whose slice
// expires with work remaining goes to the tail of the FIFO ready set; a
// process that finishes within its slice completes instead (the simulator
// schedules a completion rather than an expiry when remaining <= quantum).
type RoundRobin struct {
	ready   readyFIFO
	quantum int64
}

// NewRoundRobin creates a round-robin policy with the given slice in ticks.
func NewRoundRobin(quantumTicks int64) *RoundRobin {
	if quantumTicks < 1 {
		panic("round-robin quantum must be >= 1 tick")
	}
	return &RoundRobin{quantum: quantumTicks}
}

func (r *RoundRobin) Name() string { return PolicyRoundRobin }

func (r *RoundRobin) Enqueue(p *Process) { r.ready.Enqueue(p) }

func (r *RoundRobin) SelectNext() *Process { return r.ready.Dequeue() }

func (r *RoundRobin) Len() int { return r.ready.Len() }

func (r *RoundRobin) TimeSlice() int64 { return r.quantum }

func (r *RoundRobin) Preempts(_, _ *Process) bool { return false }
