// Package sim provides the discrete-event simulation engine for comparing
// CPU scheduling policies under catastrophic failures.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: Process lifecycle (created → waiting → running → completed)
//   - event.go: Event types that drive the simulation (Arrival, Completion,
//     QuantumExpiry, Catastrophe, Recovery) and their deterministic ordering
//   - simulator.go: The event loop, dispatching, preemption, suspension
//
// # Architecture
//
// Two pre-generated streams feed the event heap: workload.go draws Poisson
// process arrivals with exponential bursts, faults.go draws Poisson
// catastrophes with exponential repairs. The loop pops the earliest event and
// hands it to the active Policy; metrics.go observes state transitions and
// produces the final report (mean wait, availability, MTTR). Per-run records
// for downstream analysis live in sim/trace.
//
// # Key Interfaces
//
// Policy is the single extension point: fcfs.go, sjf.go, roundrobin.go and
// priority.go implement the four disciplines over their own ready sets.
package sim
