package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	CompletedCount   int
	TotalWaiting     int64
	MaxWaiting       int64
	DowntimeEpisodes int
	TotalDowntime    int64
	LongestDowntime  int64
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{}
	if st == nil {
		return summary
	}

	summary.CompletedCount = len(st.Processes)
	for _, p := range st.Processes {
		summary.TotalWaiting += p.WaitingTime
		if p.WaitingTime > summary.MaxWaiting {
			summary.MaxWaiting = p.WaitingTime
		}
	}

	summary.DowntimeEpisodes = len(st.Downtimes)
	for _, d := range st.Downtimes {
		summary.TotalDowntime += d.Duration()
		if d.Duration() > summary.LongestDowntime {
			summary.LongestDowntime = d.Duration()
		}
	}

	return summary
}
