package sim

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Fault pairs a catastrophe time with the repair duration that will follow
// it. The repair duration is drawn when the schedule is generated so that a
// catastrophe event is pure data and the stream stays deterministic for a
// fixed seed.
type Fault struct {
	At             int64 // catastrophe time in ticks
	RepairDuration int64 // ticks until the paired recovery
}

// GenerateFaults produces the catastrophe schedule for a run: failure gaps
// are exponential at rate xi (Poisson failures), repair durations exponential
// at rate beta. Returns an empty schedule when xi is zero (faults disabled).
//
// The schedule is independent of system state; a fault that fires while the
// system is already down is coalesced into the open downtime by the
// simulator, preserving the at-most-one-open-Down-interval invariant.
func GenerateFaults(cfg *Config, rng *rand.Rand) []Fault {
	if cfg.Xi == 0 {
		return nil
	}

	horizon := cfg.HorizonTicks()
	faults := make([]Fault, 0)

	now := int64(0)
	for {
		now += sampleDuration(rng, cfg.FailureRatePerTick())
		if now > horizon {
			break
		}
		faults = append(faults, Fault{
			At:             now,
			RepairDuration: sampleDuration(rng, cfg.RepairRatePerTick()),
		})
	}

	logrus.Infof("generated %d catastrophes over %d ticks", len(faults), horizon)
	return faults
}
