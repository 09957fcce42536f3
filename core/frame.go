// File: frame.go
// Role: Frame, the named node of the graph: a human-readable name, a
// stable UUID, and an item index keyed by runtime type tag.
// Invariant (enforced by EnvireGraph, not by Frame itself): every item in
// every list has its frame back-reference set to this frame's id and its
// type tag equal to the list's key.

package core

import (
	"sort"

	"github.com/google/uuid"
	"github.com/katalvlaran/envgraph/spatial"
)

// Frame is a node in the graph: a coordinate frame plus its attached item
// collection. It implements FrameProperty.
type Frame struct {
	id    spatial.FrameId
	uuid  uuid.UUID
	items map[TypeTag][]itemHandle
}

// NewFrame constructs an empty Frame named id.
func NewFrame(id spatial.FrameId) *Frame {
	return &Frame{id: id, uuid: uuid.New(), items: make(map[TypeTag][]itemHandle)}
}

// FrameName returns the frame's id, satisfying FrameProperty.
func (f *Frame) FrameName() spatial.FrameId {
	return f.id
}

// UUID returns the frame's stable identifier, independent of its name.
func (f *Frame) UUID() uuid.UUID {
	return f.uuid
}

// itemsOfTag returns the (possibly nil) item list for tag, without copying.
func (f *Frame) itemsOfTag(tag TypeTag) []itemHandle {
	return f.items[tag]
}

// appendItem appends h to its type tag's list and sets its frame
// back-reference.
func (f *Frame) appendItem(h itemHandle) {
	h.setFrameID(f.id)
	tag := h.TypeTag()
	f.items[tag] = append(f.items[tag], h)
}

// removeItemByID removes the item with the given tag and UUID, reporting
// whether it was found.
func (f *Frame) removeItemByID(tag TypeTag, id uuid.UUID) (itemHandle, bool) {
	list := f.items[tag]
	for i, h := range list {
		if h.ID() == id {
			removed := h
			f.items[tag] = append(list[:i], list[i+1:]...)
			if len(f.items[tag]) == 0 {
				delete(f.items, tag)
			}
			removed.setFrameID("")
			return removed, true
		}
	}
	return nil, false
}

// allItems returns every item handle attached to f, grouped by tag, in a
// deterministic tag-then-insertion order (tags ordered by their String()
// form). Used by filtered copy and by publishCurrentState/clearFrame.
func (f *Frame) allItems() []itemHandle {
	tags := make([]TypeTag, 0, len(f.items))
	for tag := range f.items {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].String() < tags[j].String() })

	var out []itemHandle
	for _, tag := range tags {
		out = append(out, f.items[tag]...)
	}
	return out
}

// totalItemCount returns the number of items attached to f across all tags.
func (f *Frame) totalItemCount() int {
	n := 0
	for _, list := range f.items {
		n += len(list)
	}
	return n
}
