package sched

import "math"

// VTimeInMS defines the time in the game world in the unit of millisecond.
type VTimeInMS uint64

// TimeAfter adds an offset to a time, saturating at the maximum value
// instead of wrapping around.
func TimeAfter(t, offset VTimeInMS) VTimeInMS {
	if t > math.MaxUint64-offset {
		return math.MaxUint64
	}

	return t + offset
}

// An Event is a unit of deferred work that a Processor fires when the
// virtual clock reaches the event's fire time.
type Event interface {
	// Execute runs the deferred action. now is the processor's clock at
	// fire time and delta is the amount of time the Update call that fired
	// the event advanced the clock by. Returning true releases the event
	// back to the processor for disposal. Returning false keeps the event
	// alive, and the event becomes responsible for its own continuation,
	// normally by requeueing itself.
	Execute(now, delta VTimeInMS) bool

	// IsDeletable tells if a non-force bulk cancellation may dispose of the
	// event immediately after aborting it.
	IsDeletable() bool

	// Abort is invoked at most once, when the event is cancelled and before
	// the processor drops its reference.
	Abort(now VTimeInMS)

	// EnqueueTime returns the clock value at which the event was handed to
	// the processor.
	EnqueueTime() VTimeInMS

	// SetEnqueueTime stamps the registration time.
	SetEnqueueTime(t VTimeInMS)

	// FireTime returns the absolute time the event is due.
	FireTime() VTimeInMS

	// SetFireTime sets the absolute time the event is due.
	SetFireTime(t VTimeInMS)

	// CancelRequested tells if the event has been marked for cancellation.
	// A marked event is aborted instead of executed when it comes due.
	CancelRequested() bool

	// RequestCancel marks the event for cancellation.
	RequestCancel()
}

// EventBase provides the bookkeeping fields and default behavior for other
// events. It executes as a no-op and is always deletable.
type EventBase struct {
	ID string

	enqueueTime     VTimeInMS
	fireTime        VTimeInMS
	cancelRequested bool
}

// NewEventBase creates a new EventBase with a freshly generated ID.
func NewEventBase() *EventBase {
	b := new(EventBase)
	b.ID = GetIDGenerator().Generate()

	return b
}

// EventID returns the ID assigned to the event at construction.
func (b *EventBase) EventID() string {
	return b.ID
}

// Execute of an EventBase does nothing and reports the event as done.
func (b *EventBase) Execute(_, _ VTimeInMS) bool {
	return true
}

// IsDeletable of an EventBase always permits disposal.
func (b *EventBase) IsDeletable() bool {
	return true
}

// Abort of an EventBase does nothing.
func (b *EventBase) Abort(_ VTimeInMS) {
}

// EnqueueTime returns the time the event was registered.
func (b *EventBase) EnqueueTime() VTimeInMS {
	return b.enqueueTime
}

// SetEnqueueTime stamps the registration time.
func (b *EventBase) SetEnqueueTime(t VTimeInMS) {
	b.enqueueTime = t
}

// FireTime returns the time the event is due.
func (b *EventBase) FireTime() VTimeInMS {
	return b.fireTime
}

// SetFireTime sets the time the event is due.
func (b *EventBase) SetFireTime(t VTimeInMS) {
	b.fireTime = t
}

// CancelRequested tells if the event is marked for cancellation.
func (b *EventBase) CancelRequested() bool {
	return b.cancelRequested
}

// RequestCancel marks the event for cancellation. The abort hook runs when
// the processor next touches the event, not here.
func (b *EventBase) RequestCancel() {
	b.cancelRequested = true
}
