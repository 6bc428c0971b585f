package sim

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Priority range assigned to generated processes, uniform inclusive.
// Lower value = higher priority.
const (
	PriorityMin = 1
	PriorityMax = 10
)

// sampleDuration draws an exponential duration in ticks for the given
// per-tick rate, floored at 1 tick. ExpFloat64 is strictly positive by
// construction, so the floor only absorbs sub-tick draws; a zero-tick gap or
// burst can never be produced.
func sampleDuration(rng *rand.Rand, ratePerTick float64) int64 {
	d := int64(rng.ExpFloat64() / ratePerTick)
	if d < 1 {
		return 1
	}
	return d
}

// GenerateProcesses produces the full process stream for a run: inter-arrival
// gaps are exponential at rate lambda (Poisson arrivals), bursts exponential
// at rate mu, priorities uniform in [PriorityMin, PriorityMax]. The stream is
// sorted by construction, arrival times are strictly increasing, and the last
// arrival is at or before the horizon. Deterministic for a fixed seed.
func GenerateProcesses(cfg *Config, rng *rand.Rand) []*Process {
	horizon := cfg.HorizonTicks()
	procs := make([]*Process, 0)

	now := int64(0)
	for id := 1; ; id++ {
		now += sampleDuration(rng, cfg.ArrivalRatePerTick())
		if now > horizon {
			break
		}
		burst := sampleDuration(rng, cfg.ServiceRatePerTick())
		prio := PriorityMin + rng.Intn(PriorityMax-PriorityMin+1)
		procs = append(procs, NewProcess(id, now, burst, prio))
	}

	logrus.Infof("generated %d processes over %d ticks", len(procs), horizon)
	return procs
}
