package sched

// An Action is a piece of entity logic that runs on a fixed period.
type Action interface {
	// Act runs one round of the action. Returning true keeps the action
	// scheduled for another round.
	Act(now VTimeInMS) bool
}

// PeriodicEvent drives an Action once per interval through the continuation
// protocol: every Execute reports "not done" and requeues the event, until
// the action stops asking for more rounds.
type PeriodicEvent struct {
	*EventBase

	action   Action
	adder    EventAdder
	interval VTimeInMS
}

// NewPeriodicEvent creates a PeriodicEvent. The event is not yet scheduled;
// call Start.
func NewPeriodicEvent(
	action Action,
	adder EventAdder,
	interval VTimeInMS,
) *PeriodicEvent {
	e := new(PeriodicEvent)
	e.EventBase = NewEventBase()
	e.action = action
	e.adder = adder
	e.interval = interval

	return e
}

// Start registers the event to fire one interval from now.
func (e *PeriodicEvent) Start() {
	e.adder.AddEvent(e, e.adder.TimeAtOffset(e.interval))
}

// Execute runs one round of the action. While the action reports progress
// the event hands ownership back to itself and requeues for the next
// period.
func (e *PeriodicEvent) Execute(now, _ VTimeInMS) bool {
	again := e.action.Act(now)
	if !again {
		return true
	}

	e.adder.Requeue(e, TimeAfter(now, e.interval))

	return false
}
