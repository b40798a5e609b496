package world

import (
	"github.com/openrealm/eventcore/sched"
)

// SpellTickEvent applies one tick of a periodic spell effect to its target.
// It reschedules itself through the continuation protocol until the ticks
// run out or the target dies.
type SpellTickEvent struct {
	*sched.EventBase

	target    *Unit
	damage    int
	period    sched.VTimeInMS
	ticksLeft int
}

// NewSpellTickEvent creates a spell tick event that fires ticks times, once
// per period, dealing damage each time.
func NewSpellTickEvent(
	target *Unit,
	damage int,
	period sched.VTimeInMS,
	ticks int,
) *SpellTickEvent {
	e := new(SpellTickEvent)
	e.EventBase = sched.NewEventBase()
	e.target = target
	e.damage = damage
	e.period = period
	e.ticksLeft = ticks

	return e
}

// Execute applies one tick of damage. The event keeps ownership of itself
// and requeues while ticks remain and the target lives.
func (e *SpellTickEvent) Execute(now, _ sched.VTimeInMS) bool {
	e.target.ApplyDamage(e.damage)
	e.ticksLeft--

	if e.ticksLeft <= 0 || !e.target.Alive() {
		return true
	}

	e.target.events.Requeue(e, sched.TimeAfter(now, e.period))

	return false
}

// ApplySpellEffect schedules a periodic spell effect on the unit, with the
// first tick one period from now.
func (u *Unit) ApplySpellEffect(
	damage int,
	period sched.VTimeInMS,
	ticks int,
) *SpellTickEvent {
	evt := NewSpellTickEvent(u, damage, period, ticks)
	u.events.AddEvent(evt, u.events.TimeAtOffset(period))

	return evt
}

// RespawnEvent brings a dead unit back to full health. While the respawn is
// still pending the event refuses deletion, so a graceful shutdown retains
// it rather than silently dropping the unit's comeback.
type RespawnEvent struct {
	*sched.EventBase

	target  *Unit
	pending bool
	aborted bool
}

// NewRespawnEvent creates a pending respawn for the unit.
func NewRespawnEvent(target *Unit) *RespawnEvent {
	e := new(RespawnEvent)
	e.EventBase = sched.NewEventBase()
	e.target = target
	e.pending = true

	return e
}

// Execute revives the target.
func (e *RespawnEvent) Execute(_, _ sched.VTimeInMS) bool {
	e.target.Health = e.target.MaxHealth
	e.pending = false

	return true
}

// IsDeletable refuses deletion while the respawn has not happened.
func (e *RespawnEvent) IsDeletable() bool {
	return !e.pending
}

// Abort records that the respawn was cancelled. The pending mark stays, so
// a graceful shutdown retains the event instead of dropping the unit's
// comeback; only a forced kill releases it.
func (e *RespawnEvent) Abort(_ sched.VTimeInMS) {
	e.aborted = true
}

// Pending tells if the respawn is still owed to the unit.
func (e *RespawnEvent) Pending() bool {
	return e.pending
}

// Aborted tells if the respawn was cancelled.
func (e *RespawnEvent) Aborted() bool {
	return e.aborted
}

// ScheduleRespawn schedules the unit to come back to life delay
// milliseconds from now.
func (u *Unit) ScheduleRespawn(delay sched.VTimeInMS) *RespawnEvent {
	evt := NewRespawnEvent(u)
	u.events.AddEvent(evt, u.events.TimeAtOffset(delay))

	return evt
}

// An aiController adapts a decision callback to the periodic action
// contract. The timer stops on its own once the unit dies.
type aiController struct {
	owner  *Unit
	decide func(u *Unit, now sched.VTimeInMS)
}

func (c *aiController) Act(now sched.VTimeInMS) bool {
	if !c.owner.Alive() {
		return false
	}

	c.decide(c.owner, now)

	return true
}

// StartAI schedules a decision callback to run on the unit every interval
// milliseconds until the unit dies.
func (u *Unit) StartAI(
	interval sched.VTimeInMS,
	decide func(u *Unit, now sched.VTimeInMS),
) *sched.PeriodicEvent {
	evt := sched.NewPeriodicEvent(
		&aiController{owner: u, decide: decide},
		u.events,
		interval,
	)
	evt.Start()

	return evt
}
