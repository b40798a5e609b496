package sched

import (
	fifo "github.com/eapache/queue"
)

// TimeTeller can be used to get the current virtual time.
type TimeTeller interface {
	CurrentTime() VTimeInMS
}

// An EventAdder accepts events to be fired in the future. Continuation
// events hold an EventAdder so that they can requeue themselves from inside
// their own Execute.
type EventAdder interface {
	AddEvent(evt Event, fireAt VTimeInMS)
	Requeue(evt Event, fireAt VTimeInMS)
	TimeAtOffset(offset VTimeInMS) VTimeInMS
}

// A Processor owns a time-ordered collection of pending events and drives
// their firing as its virtual clock advances. From registration until an
// event completes, aborts, or hands ownership back through the continuation
// protocol, the processor is the event's sole owner.
//
// A processor is driven by exactly one logical owner. None of its methods
// may be called concurrently with another.
type Processor struct {
	HookableBase

	time     VTimeInMS
	queue    EventQueue
	aborting bool

	updating bool
	staged   *fifo.Queue

	// Events aborted by a non-force KillAllEvents but retained because they
	// were not deletable. The record keeps the abort hook from running a
	// second time when the event is touched again.
	aborted map[Event]struct{}
}

// NewProcessor creates a Processor with an empty pending collection and the
// clock at zero.
func NewProcessor() *Processor {
	p := new(Processor)
	p.queue = NewEventQueue()
	p.staged = fifo.New()
	p.aborted = make(map[Event]struct{})

	return p
}

// NewProcessorWithQueue creates a Processor that stores its pending events
// in the given queue.
func NewProcessorWithQueue(q EventQueue) *Processor {
	p := NewProcessor()
	p.queue = q

	return p
}

// CurrentTime returns the processor's virtual clock.
func (p *Processor) CurrentTime() VTimeInMS {
	return p.time
}

// TimeAtOffset returns the absolute time that is offset milliseconds after
// the current clock value.
func (p *Processor) TimeAtOffset(offset VTimeInMS) VTimeInMS {
	return TimeAfter(p.time, offset)
}

// PendingCount returns the number of events the processor currently
// references, including events retained after a non-force bulk cancel and
// events staged by callbacks during an ongoing Update.
func (p *Processor) PendingCount() int {
	return p.queue.Len() + p.staged.Length()
}

// AddEvent hands an event to the processor, to fire once the clock reaches
// fireAt. The enqueue time is stamped with the current clock value. Past-due
// fire times are legal and fire on the very next Update.
func (p *Processor) AddEvent(evt Event, fireAt VTimeInMS) {
	evt.SetEnqueueTime(p.time)
	p.insert(evt, fireAt)
}

// Requeue inserts an event without restamping its enqueue time. It is the
// registration path for events rescheduling themselves from inside Execute,
// which keeps the original enqueue stamp across continuations.
func (p *Processor) Requeue(evt Event, fireAt VTimeInMS) {
	p.insert(evt, fireAt)
}

func (p *Processor) insert(evt Event, fireAt VTimeInMS) {
	// Registrations are accepted even after KillAllEvents set the aborting
	// flag. Late registrations during teardown are processed or aborted on
	// the next pass rather than rejected.
	evt.SetFireTime(fireAt)

	if p.updating {
		// Inserted from inside a callback. The event joins the pending
		// collection when the ongoing Update finishes, so that a due event
		// scheduled mid-drain fires on the next Update rather than
		// re-entering the current one.
		p.staged.Add(evt)
	} else {
		p.queue.Push(evt)
	}

	p.InvokeHook(HookCtx{
		Domain: p,
		Pos:    HookPosEventScheduled,
		Item:   evt,
	})
}

// Update advances the virtual clock by delta and fires every pending event
// whose fire time has been reached. Events fire in non-decreasing fire-time
// order; events with equal fire times fire in registration order. An Update
// with delta of zero still fires events that are already due.
func (p *Processor) Update(delta VTimeInMS) {
	p.time = TimeAfter(p.time, delta)

	p.updating = true
	for p.queue.Len() > 0 && p.queue.Peek().FireTime() <= p.time {
		evt := p.queue.Pop()
		p.fire(evt, delta)
	}
	p.updating = false

	p.flushStaged()
}

// fire runs one event that has already been removed from the pending
// collection. Removal happens before any callback, so a callback that
// inspects or mutates the processor never observes the event it is
// executing.
func (p *Processor) fire(evt Event, delta VTimeInMS) {
	if evt.CancelRequested() {
		p.abortEvent(evt)
		return
	}

	ctx := HookCtx{
		Domain: p,
		Pos:    HookPosBeforeFire,
		Item:   evt,
	}
	p.InvokeHook(ctx)

	done := evt.Execute(p.time, delta)

	ctx.Pos = HookPosAfterFire
	ctx.Detail = done
	p.InvokeHook(ctx)

	// done: the processor's reference was the last one and the event is
	// disposed of. not done: ownership has passed back to the event, which
	// is expected to have requeued itself.
}

// abortEvent runs the abort hook unless a bulk cancel already ran it, then
// lets go of the event.
func (p *Processor) abortEvent(evt Event) {
	if _, alreadyAborted := p.aborted[evt]; alreadyAborted {
		delete(p.aborted, evt)
		return
	}

	evt.Abort(p.time)
	p.InvokeHook(HookCtx{
		Domain: p,
		Pos:    HookPosEventAborted,
		Item:   evt,
	})
}

// KillAllEvents aborts every pending event. Each event receives its abort
// hook exactly once and is then disposed of, except that without force an
// event whose IsDeletable returns false stays referenced by the processor,
// aborted but alive. Retaining events leaves the processor in a terminal
// state that is only acceptable immediately before its own teardown or a
// follow-up force call.
func (p *Processor) KillAllEvents(force bool) {
	p.aborting = true

	// Registrations staged by callbacks count as pending here. A nested
	// bulk cancel issued from inside a callback must reach them too.
	p.flushStaged()

	var retained []Event

	for p.queue.Len() > 0 {
		evt := p.queue.Pop()

		if _, alreadyAborted := p.aborted[evt]; alreadyAborted {
			if !force && !evt.IsDeletable() {
				retained = append(retained, evt)
				continue
			}

			delete(p.aborted, evt)
			continue
		}

		evt.RequestCancel()
		evt.Abort(p.time)
		p.InvokeHook(HookCtx{
			Domain: p,
			Pos:    HookPosEventAborted,
			Item:   evt,
		})

		if !force && !evt.IsDeletable() {
			p.aborted[evt] = struct{}{}
			retained = append(retained, evt)
		}
	}

	for _, evt := range retained {
		p.queue.Push(evt)
	}
}

func (p *Processor) flushStaged() {
	for p.staged.Length() > 0 {
		evt := p.staged.Remove().(Event)
		p.queue.Push(evt)
	}
}
