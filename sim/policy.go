package sim

import "fmt"

// Policy names accepted by Config.Policy and NewPolicy.
const (
	PolicyFCFS               = "fcfs"
	PolicySJF                = "sjf"
	PolicyRoundRobin         = "round-robin"
	PolicyPreemptivePriority = "preemptive-priority"
)

// PolicyNames lists every valid policy, in comparison-report order.
var PolicyNames = []string{PolicyFCFS, PolicySJF, PolicyRoundRobin, PolicyPreemptivePriority}

// Policy owns the ready set of waiting processes and encodes the selection
// and preemption rules of one scheduling discipline. The simulator owns the
// running slot, dispatching and the process lifecycle; the policy only
// decides who goes next.
//
// Invariants shared by all implementations:
//   - SelectNext never returns a running or completed process (the simulator
//     never enqueues one).
//   - A process is in at most one of {ready set, running slot, suspended
//     slot} at any time.
//   - Selection tie-breaks are deterministic: key, then arrival time, then ID.
type Policy interface {
	Name() string

	// Enqueue adds a waiting process to the ready set.
	Enqueue(p *Process)

	// SelectNext removes and returns the next process to dispatch,
	// or nil if the ready set is empty.
	SelectNext() *Process

	// Len returns the size of the ready set.
	Len() int

	// TimeSlice returns the maximum ticks a single dispatch may run,
	// or 0 for run-to-completion policies.
	TimeSlice() int64

	// Preempts reports whether an arriving process displaces the running
	// one immediately. Only the preemptive-priority policy ever returns
	// true.
	Preempts(arriving, running *Process) bool
}

// validPolicies maps accepted policy names.
var validPolicies = map[string]bool{
	PolicyFCFS:               true,
	PolicySJF:                true,
	PolicyRoundRobin:         true,
	PolicyPreemptivePriority: true,
}

// IsValidPolicy returns true if name is a recognized policy name.
func IsValidPolicy(name string) bool {
	return validPolicies[name]
}

// NewPolicy creates a Policy by name. Config.Validate rejects unknown names
// up front; reaching the default branch is a programming error.
func NewPolicy(name string, quantumTicks int64) Policy {
	switch name {
	case PolicyFCFS:
		return NewFCFS()
	case PolicySJF:
		return NewSJF()
	case PolicyRoundRobin:
		return NewRoundRobin(quantumTicks)
	case PolicyPreemptivePriority:
		return NewPreemptivePriority()
	default:
		panic(fmt.Sprintf("unknown policy %q", name))
	}
}
