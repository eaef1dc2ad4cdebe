package dom

import "strings"

// Listener handles an event dispatched to a node.
type Listener func(e *Event)

// Event is dispatched to a target node and bubbles to its ancestors.
type Event struct {
	// Type is the lower-cased event name (e.g., "click").
	Type string

	// Target is the node the event was dispatched to.
	Target *Node

	// CurrentTarget is the node whose listener is running.
	CurrentTarget *Node

	// Detail carries caller data.
	Detail any

	stopped bool
}

// StopPropagation prevents the event from reaching further ancestors.
func (e *Event) StopPropagation() { e.stopped = true }

type binding struct {
	event    string
	listener Listener
}

// AddEventListener registers a listener. Listeners run in registration
// order.
func (n *Node) AddEventListener(event string, l Listener) {
	if l == nil {
		return
	}
	n.handlers = append(n.handlers, binding{event: strings.ToLower(event), listener: l})
}

// EventTypes returns the distinct event names with listeners, in
// registration order.
func (n *Node) EventTypes() []string {
	var out []string
	seen := make(map[string]bool)
	for _, b := range n.handlers {
		if !seen[b.event] {
			seen[b.event] = true
			out = append(out, b.event)
		}
	}
	return out
}

// ListenerCount returns the number of listeners for event.
func (n *Node) ListenerCount(event string) int {
	event = strings.ToLower(event)
	count := 0
	for _, b := range n.handlers {
		if b.event == event {
			count++
		}
	}
	return count
}

// DispatchEvent runs the listeners for e on n and then on each ancestor
// until one stops propagation.
func (n *Node) DispatchEvent(e *Event) {
	e.Type = strings.ToLower(e.Type)
	e.Target = n
	for cur := n; cur != nil && !e.stopped; cur = cur.parent {
		e.CurrentTarget = cur
		for _, b := range cur.handlers {
			if b.event == e.Type {
				b.listener(e)
			}
		}
	}
}
