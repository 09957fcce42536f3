// File: dispatcher.go
// Role: Dispatcher, adapted from GraphEventDispatcher.hpp/.cpp: a
// Subscriber that parses an Event's Kind and fans it out to whichever
// per-kind callbacks the caller has registered, instead of making every
// subscriber implement a type switch itself.

package events

// Dispatcher routes Events to per-kind callback lists. The zero value is
// not ready for use; construct with NewDispatcher.
type Dispatcher struct {
	enabled bool

	onFrameAdded   []func(Event)
	onFrameRemoved []func(Event)
	onEdgeAdded    []func(Event)
	onEdgeModified []func(Event)
	onEdgeRemoved  []func(Event)
	onItemAdded    []func(Event)
	onItemRemoved  []func(Event)
}

// NewDispatcher constructs an enabled Dispatcher with no callbacks.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{enabled: true}
}

// Enable toggles whether NotifyGraphEvent dispatches at all. A disabled
// Dispatcher silently drops every event.
func (d *Dispatcher) Enable(enabled bool) {
	d.enabled = enabled
}

// Enabled reports the current enable state.
func (d *Dispatcher) Enabled() bool {
	return d.enabled
}

func (d *Dispatcher) OnFrameAdded(cb func(Event))   { d.onFrameAdded = append(d.onFrameAdded, cb) }
func (d *Dispatcher) OnFrameRemoved(cb func(Event)) { d.onFrameRemoved = append(d.onFrameRemoved, cb) }
func (d *Dispatcher) OnEdgeAdded(cb func(Event))    { d.onEdgeAdded = append(d.onEdgeAdded, cb) }
func (d *Dispatcher) OnEdgeModified(cb func(Event)) { d.onEdgeModified = append(d.onEdgeModified, cb) }
func (d *Dispatcher) OnEdgeRemoved(cb func(Event))  { d.onEdgeRemoved = append(d.onEdgeRemoved, cb) }
func (d *Dispatcher) OnItemAdded(cb func(Event))    { d.onItemAdded = append(d.onItemAdded, cb) }
func (d *Dispatcher) OnItemRemoved(cb func(Event))  { d.onItemRemoved = append(d.onItemRemoved, cb) }

// NotifyGraphEvent implements Subscriber.
func (d *Dispatcher) NotifyGraphEvent(e Event) {
	if !d.enabled {
		return
	}
	var callbacks []func(Event)
	switch e.Kind {
	case FrameAdded:
		callbacks = d.onFrameAdded
	case FrameRemoved:
		callbacks = d.onFrameRemoved
	case EdgeAdded:
		callbacks = d.onEdgeAdded
	case EdgeModified:
		callbacks = d.onEdgeModified
	case EdgeRemoved:
		callbacks = d.onEdgeRemoved
	case ItemAddedToFrame:
		callbacks = d.onItemAdded
	case ItemRemovedFromFrame:
		callbacks = d.onItemRemoved
	}
	for _, cb := range callbacks {
		cb(e)
	}
}
