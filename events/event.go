// File: event.go
// Role: Event, the single flat notification type covering every kind of
// graph mutation, and the coalescing predicate a Queue uses to drop
// superseded events. Grounded on GraphEvent/EdgeEvents/ItemAddedEvent/
// ItemRemovedEvent: those use a small class hierarchy (one struct per
// kind) where Go uses one struct with a Kind tag and unused fields left
// zero, which is the idiom this module's own Item[T]/itemHandle pairing
// already leans on for runtime type erasure.

package events

import (
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/envgraph/spatial"
)

// Kind identifies which structural mutation an Event describes.
type Kind int

const (
	FrameAdded Kind = iota
	FrameRemoved
	EdgeAdded
	EdgeModified
	EdgeRemoved
	ItemAddedToFrame
	ItemRemovedFromFrame
)

func (k Kind) String() string {
	switch k {
	case FrameAdded:
		return "FRAME_ADDED"
	case FrameRemoved:
		return "FRAME_REMOVED"
	case EdgeAdded:
		return "EDGE_ADDED"
	case EdgeModified:
		return "EDGE_MODIFIED"
	case EdgeRemoved:
		return "EDGE_REMOVED"
	case ItemAddedToFrame:
		return "ITEM_ADDED_TO_FRAME"
	case ItemRemovedFromFrame:
		return "ITEM_REMOVED_FROM_FRAME"
	default:
		return "UNKNOWN"
	}
}

// Event is a single structural-mutation notification. Only the fields
// relevant to Kind are populated; the rest are left zero.
type Event struct {
	Kind Kind
	Time time.Time

	// Frame-kind and item-kind events.
	Frame spatial.FrameId

	// Edge-kind events. Origin/Target name the directed edge that
	// triggered the event (the one the caller mutated directly; its
	// paired inverse is implied, not reported separately).
	Origin spatial.FrameId
	Target spatial.FrameId

	// Item-kind events.
	ItemID   uuid.UUID
	ItemType reflect.Type
}

// Mergeable reports whether next supersedes e in a coalescing queue,
// following the rule that events for the same frame/edge/item arrive in
// the order ADDED, then zero or more MODIFIED, then at most one REMOVED:
// a new MODIFIED supersedes a queued MODIFIED for the same entity, and a
// new REMOVED supersedes any queued event for the same entity (ADDED or
// MODIFIED).
func (e Event) Mergeable(next Event) bool {
	if !e.sameEntity(next) {
		return false
	}
	switch next.Kind {
	case EdgeModified:
		return e.Kind == EdgeModified
	case EdgeRemoved:
		return e.Kind == EdgeAdded || e.Kind == EdgeModified
	case FrameRemoved:
		return e.Kind == FrameAdded
	case ItemRemovedFromFrame:
		return e.Kind == ItemAddedToFrame
	default:
		return false
	}
}

// Annihilates reports whether queuing next after e should drop both
// events rather than just e: an ADDED event immediately followed (after
// coalescing intermediate MODIFIEDs) by a REMOVED for the same entity
// never needs to reach a subscriber at all.
func (e Event) Annihilates(next Event) bool {
	return (e.Kind == EdgeAdded && next.Kind == EdgeRemoved) ||
		(e.Kind == FrameAdded && next.Kind == FrameRemoved) ||
		(e.Kind == ItemAddedToFrame && next.Kind == ItemRemovedFromFrame)
}

func (e Event) sameEntity(o Event) bool {
	switch e.Kind {
	case EdgeAdded, EdgeModified, EdgeRemoved:
		if o.Kind != EdgeAdded && o.Kind != EdgeModified && o.Kind != EdgeRemoved {
			return false
		}
		return (e.Origin == o.Origin && e.Target == o.Target) ||
			(e.Origin == o.Target && e.Target == o.Origin)
	case FrameAdded, FrameRemoved:
		if o.Kind != FrameAdded && o.Kind != FrameRemoved {
			return false
		}
		return e.Frame == o.Frame
	case ItemAddedToFrame, ItemRemovedFromFrame:
		if o.Kind != ItemAddedToFrame && o.Kind != ItemRemovedFromFrame {
			return false
		}
		return e.Frame == o.Frame && e.ItemID == o.ItemID && e.ItemType == o.ItemType
	default:
		return false
	}
}
