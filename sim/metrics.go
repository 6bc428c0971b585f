// Tracks run-wide reliability and efficiency statistics:
// per-process waiting times, downtime intervals, failure episodes.

package sim

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Metrics accumulates statistics while the simulation runs and produces the
// final report. Waiting times are kept in ticks until report time.
type Metrics struct {
	Arrived         int
	Completed       int
	FailureEpisodes int
	CoalescedFaults int // catastrophes absorbed into an already-open Down interval
	TotalDowntime   int64

	waitTimes []float64 // ticks, one entry per completed process
}

// NewMetrics creates an empty collector.
func NewMetrics() *Metrics {
	return &Metrics{waitTimes: make([]float64, 0)}
}

// ObserveArrival counts a process entering the system.
func (m *Metrics) ObserveArrival(_ *Process) {
	m.Arrived++
}

// ObserveCompletion records a finished process's waiting time.
func (m *Metrics) ObserveCompletion(p *Process) {
	m.Completed++
	m.waitTimes = append(m.waitTimes, float64(p.WaitingTime()))
}

// ObserveDowntime records one closed Down interval.
func (m *Metrics) ObserveDowntime(duration int64) {
	m.FailureEpisodes++
	m.TotalDowntime += duration
}

// ObserveCoalescedFault counts a catastrophe that fired while already Down.
func (m *Metrics) ObserveCoalescedFault() {
	m.CoalescedFaults++
}

// Report holds the final figures of a run, in seconds. AvgWaitingTime,
// MedianWaitingTime and MTTR are NaN when their denominators are zero
// (no completions / no failure episodes); Availability is clamped to [0, 1].
type Report struct {
	Policy            string
	Arrived           int
	Completed         int
	AvgWaitingTime    float64
	MedianWaitingTime float64
	MaxWaitingTime    float64
	Availability      float64
	MTTR              float64
	FailureEpisodes   int
	CoalescedFaults   int
	TotalDowntime     float64
}

// Report computes the final figures against the configured horizon.
func (m *Metrics) Report(policy string, horizonTicks int64) Report {
	r := Report{
		Policy:            policy,
		Arrived:           m.Arrived,
		Completed:         m.Completed,
		AvgWaitingTime:    math.NaN(),
		MedianWaitingTime: math.NaN(),
		MTTR:              math.NaN(),
		FailureEpisodes:   m.FailureEpisodes,
		CoalescedFaults:   m.CoalescedFaults,
		TotalDowntime:     float64(m.TotalDowntime) / TicksPerSecond,
	}

	if len(m.waitTimes) > 0 {
		sorted := append([]float64(nil), m.waitTimes...)
		sort.Float64s(sorted)
		r.AvgWaitingTime = stat.Mean(sorted, nil) / TicksPerSecond
		r.MedianWaitingTime = stat.Quantile(0.5, stat.Empirical, sorted, nil) / TicksPerSecond
		r.MaxWaitingTime = sorted[len(sorted)-1] / TicksPerSecond
	}

	availability := float64(horizonTicks-m.TotalDowntime) / float64(horizonTicks)
	r.Availability = math.Min(1.0, math.Max(0.0, availability))

	if m.FailureEpisodes > 0 {
		r.MTTR = float64(m.TotalDowntime) / float64(m.FailureEpisodes) / TicksPerSecond
	}

	return r
}

// Print displays the report at the end of the simulation.
func (r Report) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Policy               : %s\n", r.Policy)
	fmt.Printf("Arrived Processes    : %d\n", r.Arrived)
	fmt.Printf("Completed Processes  : %d\n", r.Completed)
	fmt.Printf("Average Waiting Time : %s\n", formatSeconds(r.AvgWaitingTime))
	fmt.Printf("Median Waiting Time  : %s\n", formatSeconds(r.MedianWaitingTime))
	fmt.Printf("Max Waiting Time     : %s\n", formatSeconds(r.MaxWaitingTime))
	fmt.Printf("System Availability  : %.4f\n", r.Availability)
	fmt.Printf("MTTR                 : %s\n", formatSeconds(r.MTTR))
	fmt.Printf("Failure Episodes     : %d\n", r.FailureEpisodes)
	if r.CoalescedFaults > 0 {
		fmt.Printf("Coalesced Faults     : %d\n", r.CoalescedFaults)
	}
	fmt.Printf("Total Downtime       : %.2f s\n", r.TotalDowntime)
}

// formatSeconds renders a seconds value, or "n/a (undefined)" for NaN markers.
func formatSeconds(v float64) string {
	if math.IsNaN(v) {
		return "n/a (undefined)"
	}
	return fmt.Sprintf("%.4f s", v)
}
