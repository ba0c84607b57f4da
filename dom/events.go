package dom

// EventListener is a callback for DOM events of a given type.
type EventListener func(eventType string, target Node)

// EventTarget is the listener registration part of the W3C node interface.
type EventTarget interface {
	AddEventListener(eventType string, listener EventListener)
	RemoveEventListener(eventType string, listener EventListener)
}

// InertEventTarget implements EventTarget without any effect: listeners are
// neither stored nor ever called. It is embedded in Node to provide the method
// set for clients expecting it. Event dispatch is not part of this package.
type InertEventTarget struct{}

// AddEventListener does nothing.
func (InertEventTarget) AddEventListener(eventType string, listener EventListener) {}

// RemoveEventListener does nothing.
func (InertEventTarget) RemoveEventListener(eventType string, listener EventListener) {}

var _ EventTarget = InertEventTarget{}
