package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/catastrophe-sim/catastrophe-sim/sim/trace"
)

// Simulator drives the discrete-event loop: a single logical processor, one
// scheduling policy, randomized process arrivals and catastrophic failures.
//
// Single-threaded cooperative model: every event handler runs to completion
// and may schedule follow-up events; nothing suspends mid-processing. All
// state mutation happens as a direct synchronous reaction to a popped event,
// which makes runs bit-for-bit reproducible for a fixed seed.
type Simulator struct {
	Config  *Config
	Policy  Policy
	Metrics *Metrics
	Trace   *trace.SimulationTrace

	EventQueue *EventHeap
	Clock      int64
	Horizon    int64

	// SystemUp is the global Up/Down flag. While Down the processor performs
	// no work; at most one Down interval is open at a time.
	SystemUp  bool
	downStart int64

	// Running is the process currently holding the processor, nil when idle
	// or Down. Suspended holds a process paused by a catastrophe; it resumes
	// ahead of the ready set on recovery with its remaining demand unchanged.
	Running   *Process
	Suspended *Process

	RNG *PartitionedRNG

	lastDispatch int64
	nextEventID  uint64 // per-simulator counter for deterministic event ordering
	nextSerial   uint64 // dispatch serials for stale-event detection
}

// NewSimulator validates the configuration and builds an empty simulator.
// Callers either GenerateWorkload from the config's random streams or inject
// processes and faults by hand.
func NewSimulator(cfg *Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Simulator{
		Config:     cfg,
		Policy:     NewPolicy(cfg.Policy, cfg.QuantumTicks()),
		Metrics:    NewMetrics(),
		Trace:      trace.NewSimulationTrace(),
		EventQueue: NewEventHeap(),
		Horizon:    cfg.HorizonTicks(),
		SystemUp:   true,
		downStart:  -1,
		RNG:        NewPartitionedRNG(cfg.Seed),
	}, nil
}

// GenerateWorkload draws the process and fault streams from the config's
// seeded RNG subsystems and schedules their events. The process stream is
// identical across policies for the same seed.
func (s *Simulator) GenerateWorkload() {
	for _, p := range GenerateProcesses(s.Config, s.RNG.ForSubsystem(SubsystemWorkload)) {
		s.InjectProcess(p)
	}
	for _, f := range GenerateFaults(s.Config, s.RNG.ForSubsystem(SubsystemFaults)) {
		s.InjectFault(f)
	}
}

// InjectProcess schedules an arrival event for a pre-built process.
func (s *Simulator) InjectProcess(p *Process) {
	s.schedule(&ArrivalEvent{
		BaseEvent: newBaseEvent(p.ArrivalTime, EventTypeArrival, s.newEventID()),
		Process:   p,
	})
}

// InjectFault schedules a catastrophe event for a pre-built fault.
func (s *Simulator) InjectFault(f Fault) {
	s.schedule(&CatastropheEvent{
		BaseEvent:      newBaseEvent(f.At, EventTypeCatastrophe, s.newEventID()),
		RepairDuration: f.RepairDuration,
	})
}

func (s *Simulator) schedule(e Event) {
	s.EventQueue.Schedule(e)
}

func (s *Simulator) newEventID() uint64 {
	s.nextEventID++
	return s.nextEventID
}

// Run executes the event loop until the queue drains or the next event lies
// beyond the horizon, then returns the final report.
func (s *Simulator) Run() Report {
	for {
		event := s.EventQueue.PopNext()
		if event == nil {
			break
		}
		if event.Timestamp() > s.Horizon {
			// The heap is time-ordered: everything left is beyond the horizon.
			break
		}
		if event.Timestamp() < s.Clock {
			panic(fmt.Sprintf("clock went backwards: %d < %d", event.Timestamp(), s.Clock))
		}
		s.Clock = event.Timestamp()
		event.Execute(s)
	}

	// A Down interval still open at the horizon is truncated there so that
	// total downtime never exceeds the horizon.
	if !s.SystemUp {
		s.closeDownInterval(s.Horizon)
		s.SystemUp = true
	}

	return s.Metrics.Report(s.Policy.Name(), s.Horizon)
}

// dispatch grants the processor to p. Records the first-dispatch time once,
// stamps a fresh dispatch serial (invalidating any pending completion or
// expiry from an earlier occupancy) and schedules the outcome of this slice:
// a quantum expiry when the policy's slice is shorter than the remaining
// demand, a completion otherwise.
func (s *Simulator) dispatch(p *Process, now int64) {
	if s.Running != nil {
		panic(fmt.Sprintf("dispatch P%d while P%d is running", p.ID, s.Running.ID))
	}
	if !s.SystemUp {
		panic(fmt.Sprintf("dispatch P%d while system is down", p.ID))
	}

	if p.StartTime < 0 {
		p.StartTime = now
	}
	p.State = ProcessStateRunning
	s.nextSerial++
	p.dispatchSerial = s.nextSerial
	s.Running = p
	s.lastDispatch = now

	slice := s.Policy.TimeSlice()
	if slice > 0 && slice < p.Remaining {
		s.schedule(&QuantumExpiryEvent{
			BaseEvent: newBaseEvent(now+slice, EventTypeQuantumExpiry, s.newEventID()),
			Process:   p,
			Serial:    p.dispatchSerial,
		})
	} else {
		s.schedule(&CompletionEvent{
			BaseEvent: newBaseEvent(now+p.Remaining, EventTypeCompletion, s.newEventID()),
			Process:   p,
			Serial:    p.dispatchSerial,
		})
	}
	logrus.Debugf("dispatch P%d at %d (rem=%d)", p.ID, now, p.Remaining)
}

// dispatchNext fills an idle processor from the ready set, if possible.
func (s *Simulator) dispatchNext(now int64) {
	if next := s.Policy.SelectNext(); next != nil {
		s.dispatch(next, now)
	}
}

// stale reports whether a completion or expiry event refers to an occupancy
// of the running slot that has since ended (preemption or suspension).
func (s *Simulator) stale(p *Process, serial uint64) bool {
	return s.Running != p || p.dispatchSerial != serial
}

func (s *Simulator) handleArrival(e *ArrivalEvent) {
	p := e.Process
	p.State = ProcessStateWaiting
	s.Metrics.ObserveArrival(p)

	now := e.Timestamp()
	if s.SystemUp && s.Running != nil && s.Policy.Preempts(p, s.Running) {
		s.preempt(now)
		s.dispatch(p, now)
		return
	}

	s.Policy.Enqueue(p)
	if s.SystemUp && s.Running == nil {
		// Suspended is only occupied while Down, so the processor is
		// genuinely idle here.
		s.dispatchNext(now)
	}
}

// preempt freezes the running process's remaining demand at its current
// consumption and returns it to the ready set.
func (s *Simulator) preempt(now int64) {
	p := s.Running
	p.Remaining -= now - s.lastDispatch
	if p.Remaining <= 0 {
		// A completion at this timestamp would have executed first.
		panic(fmt.Sprintf("preempting P%d with no work remaining", p.ID))
	}
	p.State = ProcessStateWaiting
	s.Running = nil
	s.Policy.Enqueue(p)
	logrus.Debugf("preempt P%d at %d (rem=%d)", p.ID, now, p.Remaining)
}

func (s *Simulator) handleCompletion(e *CompletionEvent) {
	if s.stale(e.Process, e.Serial) {
		logrus.Debugf("stale completion for P%d ignored", e.Process.ID)
		return
	}

	now := e.Timestamp()
	p := e.Process
	p.Remaining = 0
	p.FinishTime = now
	p.State = ProcessStateCompleted
	s.Running = nil

	s.Metrics.ObserveCompletion(p)
	s.Trace.RecordProcess(trace.ProcessRecord{
		ID:          p.ID,
		Priority:    p.Priority,
		ArrivalTime: p.ArrivalTime,
		BurstTime:   p.BurstTime,
		StartTime:   p.StartTime,
		FinishTime:  p.FinishTime,
		WaitingTime: p.WaitingTime(),
	})

	s.dispatchNext(now)
}

func (s *Simulator) handleQuantumExpiry(e *QuantumExpiryEvent) {
	if s.stale(e.Process, e.Serial) {
		logrus.Debugf("stale quantum expiry for P%d ignored", e.Process.ID)
		return
	}

	now := e.Timestamp()
	p := e.Process
	p.Remaining -= now - s.lastDispatch
	if p.Remaining <= 0 {
		// dispatch schedules a completion instead when the slice covers the
		// remaining demand.
		panic(fmt.Sprintf("quantum expiry for P%d with no work remaining", p.ID))
	}
	p.State = ProcessStateWaiting
	s.Running = nil
	s.Policy.Enqueue(p)

	s.dispatchNext(now)
}

func (s *Simulator) handleCatastrophe(e *CatastropheEvent) {
	now := e.Timestamp()
	if !s.SystemUp {
		// Already Down: coalesce into the open interval, MTTR clock untouched.
		s.Metrics.ObserveCoalescedFault()
		logrus.Debugf("catastrophe at %d coalesced into open downtime", now)
		return
	}

	logrus.Infof("catastrophe at %d ticks, repair in %d", now, e.RepairDuration)
	s.SystemUp = false
	s.downStart = now

	if s.Running != nil {
		p := s.Running
		p.Remaining -= now - s.lastDispatch
		if p.Remaining <= 0 {
			panic(fmt.Sprintf("suspending P%d with no work remaining", p.ID))
		}
		p.State = ProcessStateSuspended
		s.Suspended = p
		s.Running = nil
		logrus.Debugf("suspend P%d (rem=%d)", p.ID, p.Remaining)
	}

	s.schedule(&RecoveryEvent{
		BaseEvent: newBaseEvent(now+e.RepairDuration, EventTypeRecovery, s.newEventID()),
	})
}

func (s *Simulator) handleRecovery(e *RecoveryEvent) {
	if s.SystemUp {
		panic("recovery while system is up")
	}

	now := e.Timestamp()
	logrus.Infof("system restored at %d ticks", now)
	s.SystemUp = true
	s.closeDownInterval(now)

	// The suspended process resumes first, ahead of anything that arrived
	// during the Down interval, with its remaining demand unchanged.
	if s.Suspended != nil {
		p := s.Suspended
		s.Suspended = nil
		s.dispatch(p, now)
		return
	}
	s.dispatchNext(now)
}

func (s *Simulator) closeDownInterval(end int64) {
	s.Metrics.ObserveDowntime(end - s.downStart)
	s.Trace.RecordDowntime(trace.DowntimeRecord{Start: s.downStart, End: end})
	s.downStart = -1
}
