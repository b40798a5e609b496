package sched

import (
	"log"
	"reflect"
)

// A LogHook is a hook that records information from a running processor.
type LogHook interface {
	Hook
}

// LogHookBase provides the common logic for all LogHooks
type LogHookBase struct {
	*log.Logger
}

// EventLogger is a hook that prints a line for every event a processor
// fires or aborts.
type EventLogger struct {
	LogHookBase
}

// NewEventLogger returns a new EventLogger which will write into the logger
func NewEventLogger(logger *log.Logger) *EventLogger {
	h := new(EventLogger)
	h.Logger = logger
	return h
}

// Func writes the event information into the logger
func (h *EventLogger) Func(ctx HookCtx) {
	evt, ok := ctx.Item.(Event)
	if !ok {
		return
	}

	switch ctx.Pos {
	case HookPosBeforeFire:
		h.Printf("%d ms, fire, %s", evt.FireTime(), reflect.TypeOf(evt))
	case HookPosEventAborted:
		h.Printf("%d ms, abort, %s", evt.FireTime(), reflect.TypeOf(evt))
	}
}
