// Package trace provides per-run record collection for downstream analysis.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// ProcessRecord captures the final timings of one completed process.
// All times are in ticks.
type ProcessRecord struct {
	ID          int
	Priority    int
	ArrivalTime int64
	BurstTime   int64
	StartTime   int64
	FinishTime  int64
	WaitingTime int64
}

// DowntimeRecord captures one closed Down interval.
type DowntimeRecord struct {
	Start int64
	End   int64
}

// Duration returns the length of the interval in ticks.
func (d DowntimeRecord) Duration() int64 {
	return d.End - d.Start
}

// SimulationTrace collects records during a simulation run.
type SimulationTrace struct {
	Processes []ProcessRecord
	Downtimes []DowntimeRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace() *SimulationTrace {
	return &SimulationTrace{
		Processes: make([]ProcessRecord, 0),
		Downtimes: make([]DowntimeRecord, 0),
	}
}

// RecordProcess appends a completed-process record.
func (st *SimulationTrace) RecordProcess(record ProcessRecord) {
	st.Processes = append(st.Processes, record)
}

// RecordDowntime appends a closed downtime record.
func (st *SimulationTrace) RecordDowntime(record DowntimeRecord) {
	st.Downtimes = append(st.Downtimes, record)
}
