package sim

// readyFIFO is the first-come-first-served ready set shared by the FCFS and
// round-robin policies.
type readyFIFO struct {
	queue []*Process
}

// Enqueue adds a process at the tail.
func (q *readyFIFO) Enqueue(p *Process) {
	q.queue = append(q.queue, p)
}

// Dequeue removes and returns the head, or nil if empty.
func (q *readyFIFO) Dequeue() *Process {
	if len(q.queue) == 0 {
		return nil
	}
	p := q.queue[0]
	q.queue = q.queue[1:]
	return p
}

// Len returns the number of queued processes.
func (q *readyFIFO) Len() int {
	return len(q.queue)
}

// FCFS dispatches in arrival order and never preempts: once running, a
// process holds the processor until completion. A system failure suspends it
// without sending it to the back of the queue.
type FCFS struct {
	ready readyFIFO
}

// NewFCFS creates a first-come-first-served policy.
func NewFCFS() *FCFS {
	return &FCFS{}
}

func (f *FCFS) Name() string { return PolicyFCFS }

func (f *FCFS) Enqueue(p *Process) { f.ready.Enqueue(p) }

func (f *FCFS) SelectNext() *Process { return f.ready.Dequeue() }

func (f *FCFS) Len() int { return f.ready.Len() }

func (f *FCFS) TimeSlice() int64 { return 0 }

func (f *FCFS) Preempts(_, _ *Process) bool { return false }
