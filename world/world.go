package world

import (
	"log"

	"github.com/openrealm/eventcore/sched"
)

// A World aggregates the units of a game world together with a world-level
// event processor for work that belongs to no single unit. One Update call
// is one server tick: the world processor advances first, then every unit's
// processor, all by the same delta.
type World struct {
	events *sched.Processor

	units         []*Unit
	unitNameIndex map[string]int
}

// NewWorld creates an empty world with its clock at zero.
func NewWorld() *World {
	w := new(World)
	w.events = sched.NewProcessor()
	w.unitNameIndex = make(map[string]int)

	return w
}

// Events returns the world-level event processor.
func (w *World) Events() *sched.Processor {
	return w.events
}

// AddUnit registers a unit with the world. Unit names must be unique.
func (w *World) AddUnit(u *Unit) {
	if _, ok := w.unitNameIndex[u.Name]; ok {
		log.Panicf("unit %s already exists in the world", u.Name)
	}

	w.unitNameIndex[u.Name] = len(w.units)
	w.units = append(w.units, u)
}

// Unit returns the registered unit with the given name, or nil.
func (w *World) Unit(name string) *Unit {
	index, ok := w.unitNameIndex[name]
	if !ok {
		return nil
	}

	return w.units[index]
}

// Units returns all the registered units.
func (w *World) Units() []*Unit {
	return w.units
}

// Update advances the whole world by delta milliseconds.
func (w *World) Update(delta sched.VTimeInMS) {
	w.events.Update(delta)

	for _, u := range w.units {
		u.Update(delta)
	}
}

// CurrentTime returns the world clock.
func (w *World) CurrentTime() sched.VTimeInMS {
	return w.events.CurrentTime()
}

// PendingCount returns the number of events pending across the world and
// its units.
func (w *World) PendingCount() int {
	n := w.events.PendingCount()
	for _, u := range w.units {
		n += u.events.PendingCount()
	}

	return n
}

// Shutdown cancels every pending event in the world. A graceful shutdown
// (force false) lets non-deletable events linger and must be followed by a
// forced one before the world is discarded.
func (w *World) Shutdown(force bool) {
	w.events.KillAllEvents(force)

	for _, u := range w.units {
		u.Despawn(force)
	}
}
