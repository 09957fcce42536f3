// File: typed_dispatcher.go
// Role: TypedItemDispatcher[T], adapted from GraphItemEventDispatcher.hpp:
// a Subscriber that only forwards item events whose payload type matches
// T, so callers interested in one item type never see, let alone cast,
// events for any other.

package events

import "reflect"

// TypedItemDispatcher filters item-kind Events to those carrying a T
// payload, identified by ItemType. Other Event kinds are ignored.
type TypedItemDispatcher[T any] struct {
	itemType reflect.Type

	onAdded   []func(Event)
	onRemoved []func(Event)
}

// NewTypedItemDispatcher constructs a dispatcher that only reacts to
// item events for payload type T.
func NewTypedItemDispatcher[T any]() *TypedItemDispatcher[T] {
	return &TypedItemDispatcher[T]{itemType: reflect.TypeOf((*T)(nil)).Elem()}
}

func (d *TypedItemDispatcher[T]) OnItemAdded(cb func(Event)) {
	d.onAdded = append(d.onAdded, cb)
}

func (d *TypedItemDispatcher[T]) OnItemRemoved(cb func(Event)) {
	d.onRemoved = append(d.onRemoved, cb)
}

// NotifyGraphEvent implements Subscriber.
func (d *TypedItemDispatcher[T]) NotifyGraphEvent(e Event) {
	if e.ItemType != d.itemType {
		return
	}
	switch e.Kind {
	case ItemAddedToFrame:
		for _, cb := range d.onAdded {
			cb(e)
		}
	case ItemRemovedFromFrame:
		for _, cb := range d.onRemoved {
			cb(e)
		}
	}
}
