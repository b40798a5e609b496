package world

import (
	"github.com/openrealm/eventcore/sched"
)

// A Unit is a stateful world entity. Every unit owns an event processor
// that the world drives once per tick; spell effects, respawn timers, and
// AI decisions all schedule against it.
type Unit struct {
	Name string

	Health    int
	MaxHealth int

	events *sched.Processor
}

// NewUnit creates a unit at full health.
func NewUnit(name string, maxHealth int) *Unit {
	u := new(Unit)
	u.Name = name
	u.Health = maxHealth
	u.MaxHealth = maxHealth
	u.events = sched.NewProcessor()

	return u
}

// Events returns the unit's event processor.
func (u *Unit) Events() *sched.Processor {
	return u.events
}

// Alive tells if the unit has health left.
func (u *Unit) Alive() bool {
	return u.Health > 0
}

// ApplyDamage reduces the unit's health, clamping at zero. Damage to a dead
// unit is ignored.
func (u *Unit) ApplyDamage(amount int) {
	if !u.Alive() {
		return
	}

	u.Health -= amount
	if u.Health < 0 {
		u.Health = 0
	}
}

// Heal restores health up to the unit's maximum. Dead units cannot be
// healed; they need a respawn.
func (u *Unit) Heal(amount int) {
	if !u.Alive() {
		return
	}

	u.Health += amount
	if u.Health > u.MaxHealth {
		u.Health = u.MaxHealth
	}
}

// Update advances the unit's virtual clock by delta milliseconds, firing
// whatever came due.
func (u *Unit) Update(delta sched.VTimeInMS) {
	u.events.Update(delta)
}

// Despawn cancels the unit's pending events. Without force, events that
// refuse deletion stay referenced by the unit's processor, aborted but
// alive, and need a follow-up force call before the unit goes away.
func (u *Unit) Despawn(force bool) {
	u.events.KillAllEvents(force)
}
