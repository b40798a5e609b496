package sched

// HookPos defines the enum of possible hooking positions
type HookPos struct {
	Name string
}

// HookPosEventScheduled is a hook position that triggers when an event is
// registered with a processor.
var HookPosEventScheduled = &HookPos{Name: "EventScheduled"}

// HookPosBeforeFire is a hook position that triggers before executing a due
// event.
var HookPosBeforeFire = &HookPos{Name: "BeforeFire"}

// HookPosAfterFire is a hook position that triggers after executing a due
// event. The context detail carries the bool the event returned from
// Execute.
var HookPosAfterFire = &HookPos{Name: "AfterFire"}

// HookPosEventAborted is a hook position that triggers after an event's
// abort hook runs, whether through due-time cancellation or bulk
// cancellation.
var HookPosEventAborted = &HookPos{Name: "EventAborted"}

// HookCtx is the context that holds all the information about the site that
// a hook is triggered
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   interface{}
	Detail interface{}
}

// Hookable defines an object that accept Hooks
type Hookable interface {
	// AcceptHook registers a hook
	AcceptHook(hook Hook)
}

// Hook is a short piece of program that can be invoked by a hookable object.
type Hook interface {
	// Func determines what to do if hook is invoked.
	Func(ctx HookCtx)
}

// A HookableBase provides some utility function for other type that
// implement the Hookable interface.
type HookableBase struct {
	Hooks []Hook
}

// NewHookableBase creates a HookableBase object
func NewHookableBase() *HookableBase {
	h := new(HookableBase)
	h.Hooks = make([]Hook, 0)
	return h
}

// AcceptHook register a hook
func (h *HookableBase) AcceptHook(hook Hook) {
	h.Hooks = append(h.Hooks, hook)
}

// InvokeHook triggers the registered Hooks
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.Hooks {
		hook.Func(ctx)
	}
}
