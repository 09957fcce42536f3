// File: item.go
// Role: Item[T], the typed payload handle attached to a Frame, plus the
// type-erased itemHandle interface the Frame index stores internally.
// An Item detached from a frame has FrameID() == "".

package core

import (
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/envgraph/spatial"
)

// TypeTag is the opaque, process-stable identifier for an Item's payload
// type, used as the key of a Frame's item index.
type TypeTag = reflect.Type

// Cloner is implemented by payload types that know how to deep-copy
// themselves. Item.Clone uses it when present; otherwise the payload is
// copied by plain Go value assignment (shallow value copy).
type Cloner[T any] interface {
	CloneItem() T
}

// itemHandle is the type-erased view of an Item[T] that Frame's index
// stores. Item[T] implements it for every T.
type itemHandle interface {
	ID() uuid.UUID
	FrameID() spatial.FrameId
	setFrameID(spatial.FrameId)
	TypeTag() TypeTag
	Time() time.Time
	cloneHandle() itemHandle
}

// Item is a typed payload attached to (at most) one Frame at a time. The
// zero value is not valid; construct with NewItem.
type Item[T any] struct {
	id        uuid.UUID
	data      T
	timestamp time.Time
	frame     spatial.FrameId
}

// NewItem wraps data in a fresh Item with a new UUID and the current time.
func NewItem[T any](data T) *Item[T] {
	return &Item[T]{id: uuid.New(), data: data, timestamp: time.Now()}
}

// ID returns the item's stable UUID.
func (it *Item[T]) ID() uuid.UUID {
	return it.id
}

// Data returns the item's payload.
func (it *Item[T]) Data() T {
	return it.data
}

// SetData replaces the item's payload in place (mutating the payload while
// an iterator walks the frame's item list is permitted; it does not
// invalidate the iterator).
func (it *Item[T]) SetData(data T) {
	it.data = data
}

// Time returns the item's timestamp.
func (it *Item[T]) Time() time.Time {
	return it.timestamp
}

// SetTime overwrites the item's timestamp.
func (it *Item[T]) SetTime(t time.Time) {
	it.timestamp = t
}

// FrameID returns the id of the frame this item is currently attached to,
// or "" if the item is detached.
func (it *Item[T]) FrameID() spatial.FrameId {
	return it.frame
}

func (it *Item[T]) setFrameID(id spatial.FrameId) {
	it.frame = id
}

// TypeTag returns the runtime type tag for T.
func (it *Item[T]) TypeTag() TypeTag {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Clone returns a copy of it (the payload deep-copied via Cloner when T
// implements it, otherwise copied by value), preserving the original UUID per the
// filtered-copy policy (see EnvireGraph.Copy). The clone is detached from
// any frame; the caller re-attaches it into the destination frame.
func (it *Item[T]) Clone() *Item[T] {
	data := it.data
	if cloner, ok := any(it.data).(Cloner[T]); ok {
		data = cloner.CloneItem()
	}
	return &Item[T]{id: it.id, data: data, timestamp: it.timestamp}
}

func (it *Item[T]) cloneHandle() itemHandle {
	return it.Clone()
}
