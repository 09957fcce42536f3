// File: items.go
// Role: the typed item<->frame attachment API. Lives in core (not
// envgraph) because it operates purely on *Frame and needs no knowledge
// of the graph's edges; kept as free generic functions rather than
// methods because Go methods cannot carry their own type parameters.

package core

import (
	"reflect"

	"github.com/google/uuid"
)

// AddItemToFrame attaches item to f. Returns ErrFrameAlreadySet if item
// is already attached to a frame (including f itself); callers that want
// to move an item between frames must RemoveItemFromFrame it first.
func AddItemToFrame[T any](f *Frame, item *Item[T]) error {
	if !item.FrameID().Empty() {
		return ErrFrameAlreadySet
	}
	f.appendItem(item)
	return nil
}

// RemoveItemFromFrame detaches and returns the T-typed item with id from
// f. Returns ErrUnknownItem if no such item is attached to f.
func RemoveItemFromFrame[T any](f *Frame, id uuid.UUID) (*Item[T], error) {
	tag := reflect.TypeOf((*T)(nil)).Elem()
	removed, ok := f.removeItemByID(tag, id)
	if !ok {
		return nil, ErrUnknownItem
	}
	return removed.(*Item[T]), nil
}

// GetItems returns every T-typed item attached to f, in insertion order.
func GetItems[T any](f *Frame) []*Item[T] {
	tag := reflect.TypeOf((*T)(nil)).Elem()
	handles := f.itemsOfTag(tag)
	out := make([]*Item[T], 0, len(handles))
	for _, h := range handles {
		out = append(out, h.(*Item[T]))
	}
	return out
}

// GetItemCount returns the number of T-typed items attached to f.
func GetItemCount[T any](f *Frame) int {
	tag := reflect.TypeOf((*T)(nil)).Elem()
	return len(f.itemsOfTag(tag))
}

// ContainsItems reports whether f has at least one T-typed item attached.
func ContainsItems[T any](f *Frame) bool {
	return GetItemCount[T](f) > 0
}

// GetTotalItemCount returns the number of items attached to f across all
// types.
func GetTotalItemCount(f *Frame) int {
	return f.totalItemCount()
}

// CopyItems clones every item of src for which keep returns true (or
// every item, if keep is nil) and attaches the clones to dst. Clone
// preserves each item's original UUID, per the filtered-copy policy (see
// envgraph.EnvireGraph.Copy).
func CopyItems(dst, src *Frame, keep func(tag TypeTag) bool) {
	for _, h := range src.allItems() {
		if keep != nil && !keep(h.TypeTag()) {
			continue
		}
		dst.appendItem(h.cloneHandle())
	}
}

// ItemRef is a type-erased description of one item attached to a Frame:
// enough to synthesize a replay event without recovering its payload
// type parameter.
type ItemRef struct {
	ID  uuid.UUID
	Tag TypeTag
}

// ItemRefs returns a type-erased description of every item attached to
// f, in the same deterministic tag-then-insertion order as Frame's own
// internal iteration (see Frame.allItems).
func ItemRefs(f *Frame) []ItemRef {
	all := f.allItems()
	out := make([]ItemRef, len(all))
	for i, h := range all {
		out[i] = ItemRef{ID: h.ID(), Tag: h.TypeTag()}
	}
	return out
}

// ClearFrame detaches every item from f and returns the detached
// handles, in the same deterministic tag-then-insertion order as
// Frame.allItems, for a caller that wants to publish one removal event
// per item.
func ClearFrame(f *Frame) []itemHandle {
	all := f.allItems()
	for _, h := range all {
		f.removeItemByID(h.TypeTag(), h.ID())
	}
	return all
}
