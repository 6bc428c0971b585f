package sim

import "github.com/sirupsen/logrus"

// EventType identifies the kind of a simulation event.
type EventType string

const (
	EventTypeCompletion    EventType = "Completion"
	EventTypeQuantumExpiry EventType = "QuantumExpiry"
	EventTypeRecovery      EventType = "Recovery"
	EventTypeCatastrophe   EventType = "Catastrophe"
	EventTypeArrival       EventType = "Arrival"
)

// EventTypePriority breaks ties between events at the same timestamp.
// Lower value = processed first. A completion at time T must be handled
// before a catastrophe or arrival at T can observe the finished process as
// still running, and a recovery at T must redispatch the suspended process
// before an arrival at T can reach the ready set.
var EventTypePriority = map[EventType]int{
	EventTypeCompletion:    0,
	EventTypeQuantumExpiry: 1,
	EventTypeRecovery:      2,
	EventTypeCatastrophe:   3,
	EventTypeArrival:       4,
}

// Event represents a scheduled simulation event. Execute runs synchronously
// to completion and may schedule follow-up events; all state mutation happens
// inside Execute.
type Event interface {
	Timestamp() int64
	EventID() uint64
	Type() EventType
	Execute(sim *Simulator)
}

// BaseEvent provides common event fields.
type BaseEvent struct {
	timestamp int64
	eventID   uint64
	eventType EventType
}

func newBaseEvent(timestamp int64, eventType EventType, eventID uint64) BaseEvent {
	return BaseEvent{
		timestamp: timestamp,
		eventID:   eventID,
		eventType: eventType,
	}
}

func (e *BaseEvent) Timestamp() int64 {
	return e.timestamp
}

func (e *BaseEvent) EventID() uint64 {
	return e.eventID
}

func (e *BaseEvent) Type() EventType {
	return e.eventType
}

// ArrivalEvent represents a process arriving at the system.
type ArrivalEvent struct {
	BaseEvent
	Process *Process
}

func (e *ArrivalEvent) Execute(sim *Simulator) {
	logrus.Debugf("<< Arrival: P%d at %d ticks", e.Process.ID, e.timestamp)
	sim.handleArrival(e)
}

// CompletionEvent fires when the running process would exhaust its demand.
// Stale if the process has been preempted or suspended since it was scheduled.
type CompletionEvent struct {
	BaseEvent
	Process *Process
	Serial  uint64 // dispatch serial the event was scheduled under
}

func (e *CompletionEvent) Execute(sim *Simulator) {
	logrus.Debugf("<< Completion: P%d at %d ticks", e.Process.ID, e.timestamp)
	sim.handleCompletion(e)
}

// QuantumExpiryEvent fires when a round-robin time slice runs out with work
// remaining. Stale under the same rule as CompletionEvent.
type QuantumExpiryEvent struct {
	BaseEvent
	Process *Process
	Serial  uint64
}

func (e *QuantumExpiryEvent) Execute(sim *Simulator) {
	logrus.Debugf("<< QuantumExpiry: P%d at %d ticks", e.Process.ID, e.timestamp)
	sim.handleQuantumExpiry(e)
}

// CatastropheEvent takes the system down. The paired repair duration is
// carried on the event so the recovery can be scheduled the moment the
// downtime begins.
type CatastropheEvent struct {
	BaseEvent
	RepairDuration int64
}

func (e *CatastropheEvent) Execute(sim *Simulator) {
	logrus.Debugf("<< Catastrophe at %d ticks (repair=%d)", e.timestamp, e.RepairDuration)
	sim.handleCatastrophe(e)
}

// RecoveryEvent brings the system back up.
type RecoveryEvent struct {
	BaseEvent
}

func (e *RecoveryEvent) Execute(sim *Simulator) {
	logrus.Debugf("<< Recovery at %d ticks", e.timestamp)
	sim.handleRecovery(e)
}
