package sim

import "fmt"

// ProcessState tracks where a process is in its lifecycle.
type ProcessState string

const (
	ProcessStateCreated   ProcessState = "created"
	ProcessStateWaiting   ProcessState = "waiting"
	ProcessStateRunning   ProcessState = "running"
	ProcessStateSuspended ProcessState = "suspended" // held by a catastrophe, not in the ready set
	ProcessStateCompleted ProcessState = "completed"
)

// Process represents one unit of simulated work.
//
// Lifecycle: Created -> Waiting -> Running -> {Waiting | Suspended | Completed}.
// A process is never destroyed mid-simulation; completed processes persist
// (immutable) for metrics aggregation.
type Process struct {
	ID          int
	ArrivalTime int64 // ticks, set once at creation
	BurstTime   int64 // total CPU demand in ticks, immutable
	Remaining   int64 // demand not yet consumed
	Priority    int   // lower value = higher priority; preemptive-priority only
	StartTime   int64 // first dispatch time, -1 until set
	FinishTime  int64 // completion time, -1 until set
	State       ProcessState

	// dispatchSerial identifies the current occupancy of the running slot.
	// A pending Completion or QuantumExpiry event whose serial no longer
	// matches is stale and must be ignored.
	dispatchSerial uint64
}

// NewProcess creates a process in the Created state.
func NewProcess(id int, arrival, burst int64, priority int) *Process {
	if burst < 1 {
		panic(fmt.Sprintf("process %d: burst must be >= 1 tick, got %d", id, burst))
	}
	return &Process{
		ID:          id,
		ArrivalTime: arrival,
		BurstTime:   burst,
		Remaining:   burst,
		Priority:    priority,
		StartTime:   -1,
		FinishTime:  -1,
		State:       ProcessStateCreated,
	}
}

// Completed reports whether the process has finished all of its work.
func (p *Process) Completed() bool {
	return p.State == ProcessStateCompleted
}

// WaitingTime returns finish - arrival - burst in ticks.
// Only meaningful once the process has completed; >= 0 for every completed
// process (time suspended by a failure counts as waiting).
func (p *Process) WaitingTime() int64 {
	if !p.Completed() {
		panic(fmt.Sprintf("process %d: waiting time requested before completion", p.ID))
	}
	return p.FinishTime - p.ArrivalTime - p.BurstTime
}

func (p *Process) String() string {
	return fmt.Sprintf("P%d(arr=%d burst=%d rem=%d prio=%d %s)",
		p.ID, p.ArrivalTime, p.BurstTime, p.Remaining, p.Priority, p.State)
}
