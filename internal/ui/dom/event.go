package dom

import "strings"

// EventType names a dispatched event.
type EventType string

const (
	EventClick   EventType = "click"
	EventKeyDown EventType = "keydown"
	EventFocus   EventType = "focus"
	EventBlur    EventType = "blur"
)

// Key values as reported on keyboard events.
const (
	KeyEnter = "Enter"
	KeySpace = " "
)

// NormalizeKey maps common spellings ("space", "enter", "Spacebar") onto
// the key values used by the document.
func NormalizeKey(key string) string {
	switch strings.ToLower(key) {
	case "enter", "return":
		return KeyEnter
	case "space", "spacebar", " ":
		return KeySpace
	}
	return key
}

// Listener handles a dispatched event.
type Listener func(*Event)

// Event is passed to every listener along the propagation path.
type Event struct {
	Type          EventType
	Key           string
	Target        *Node
	CurrentTarget *Node

	defaultPrevented   bool
	propagationStopped bool
}

// PreventDefault cancels the host's default action for the event.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a listener cancelled the default action.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation keeps the event from reaching ancestors.
func (e *Event) StopPropagation() {
	e.propagationStopped = true
}

func (e *Event) bubbles() bool {
	return e.Type != EventFocus && e.Type != EventBlur
}

// Dispatch delivers ev to its target and, for bubbling events, each ancestor.
// Listeners run in registration order.
func Dispatch(ev *Event) *Event {
	for cur := ev.Target; cur != nil; cur = cur.Parent {
		ev.CurrentTarget = cur
		for _, fn := range cur.listeners[ev.Type] {
			fn(ev)
		}
		if ev.propagationStopped || !ev.bubbles() {
			break
		}
	}
	ev.CurrentTarget = nil
	return ev
}
