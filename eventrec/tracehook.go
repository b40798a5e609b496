package eventrec

import (
	"reflect"

	"github.com/openrealm/eventcore/sched"
)

// TraceTableName is the table trace hooks write into.
const TraceTableName = "event_trace"

// A TraceEntry is one recorded step of an event's lifecycle.
type TraceEntry struct {
	EventID       string
	Kind          string
	Outcome       string
	EnqueueTimeMS uint64
	FireTimeMS    uint64
	RecordTimeMS  uint64
}

// A TraceHook records one row per scheduled, fired, continued, or aborted
// event. Attach it to a processor with AcceptHook.
type TraceHook struct {
	timeTeller sched.TimeTeller
	backend    Recorder
}

// NewTraceHook creates a TraceHook writing into the given recorder. The
// trace table is created if it does not exist yet.
func NewTraceHook(timeTeller sched.TimeTeller, backend Recorder) *TraceHook {
	h := new(TraceHook)
	h.timeTeller = timeTeller
	h.backend = backend

	if !tableExists(backend, TraceTableName) {
		backend.CreateTable(TraceTableName, TraceEntry{})
	}

	return h
}

func tableExists(backend Recorder, name string) bool {
	for _, t := range backend.ListTables() {
		if t == name {
			return true
		}
	}

	return false
}

// Func records the lifecycle step the context describes.
func (h *TraceHook) Func(ctx sched.HookCtx) {
	evt, ok := ctx.Item.(sched.Event)
	if !ok {
		return
	}

	var outcome string
	switch ctx.Pos {
	case sched.HookPosEventScheduled:
		outcome = "scheduled"
	case sched.HookPosAfterFire:
		outcome = "fired"
		if done, ok := ctx.Detail.(bool); ok && !done {
			outcome = "continued"
		}
	case sched.HookPosEventAborted:
		outcome = "aborted"
	default:
		return
	}

	h.backend.InsertData(TraceTableName, TraceEntry{
		EventID:       eventID(evt),
		Kind:          reflect.TypeOf(evt).String(),
		Outcome:       outcome,
		EnqueueTimeMS: uint64(evt.EnqueueTime()),
		FireTimeMS:    uint64(evt.FireTime()),
		RecordTimeMS:  uint64(h.timeTeller.CurrentTime()),
	})
}

func eventID(evt sched.Event) string {
	if ider, ok := evt.(interface{ EventID() string }); ok {
		return ider.EventID()
	}

	return ""
}
