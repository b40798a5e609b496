package world

import (
	"time"

	"github.com/openrealm/eventcore/sched"
)

// DefaultTickInterval is the wall-clock length of one world tick.
const DefaultTickInterval = 50 * time.Millisecond

// A Loop feeds wall-clock time into a world: once per tick interval it
// measures the elapsed milliseconds and advances the world by them. The
// loop is the world's single driver; nothing else may call Update while it
// runs.
type Loop struct {
	world        *World
	tickInterval time.Duration
	stop         chan struct{}
}

// NewLoop creates a loop for the world with the default tick interval.
func NewLoop(w *World) *Loop {
	l := new(Loop)
	l.world = w
	l.tickInterval = DefaultTickInterval
	l.stop = make(chan struct{})

	return l
}

// WithTickInterval overrides the tick interval.
func (l *Loop) WithTickInterval(d time.Duration) *Loop {
	l.tickInterval = d
	return l
}

// Run drives the world until Stop is called. It blocks the calling
// goroutine.
func (l *Loop) Run() {
	ticker := time.NewTicker(l.tickInterval)
	defer ticker.Stop()

	prev := time.Now()

	for {
		select {
		case <-l.stop:
			return
		case now := <-ticker.C:
			elapsed := now.Sub(prev)
			prev = now
			l.world.Update(sched.VTimeInMS(elapsed.Milliseconds()))
		}
	}
}

// Stop makes Run return after the tick in progress. Stopping a loop twice
// panics.
func (l *Loop) Stop() {
	close(l.stop)
}
