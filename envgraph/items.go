// File: items.go
// Role: the typed item API, mirroring core.AddItemToFrame and friends
// but adding the ITEM_ADDED_TO_FRAME / ITEM_REMOVED_FROM_FRAME event
// publication core.Graph's EventSink cannot cover (item mutation never
// touches an edge or a frame property, so it is invisible to
// core.EventSink). Free functions, not methods: Go methods cannot
// declare their own type parameters.

package envgraph

import (
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/envgraph/core"
	"github.com/katalvlaran/envgraph/events"
	"github.com/katalvlaran/envgraph/spatial"
)

// AddItemToFrame attaches item to frame id, then publishes
// ITEM_ADDED_TO_FRAME. Returns ErrUnknownFrame if the frame does not
// exist, ErrFrameAlreadySet if item is already attached somewhere.
func AddItemToFrame[T any](eg *EnvireGraph, id spatial.FrameId, item *core.Item[T]) error {
	f, err := eg.frame(id)
	if err != nil {
		return err
	}
	if err := core.AddItemToFrame(f, item); err != nil {
		return err
	}

	eg.publisher.Notify(events.Event{
		Kind:     events.ItemAddedToFrame,
		Frame:    id,
		ItemID:   item.ID(),
		ItemType: item.TypeTag(),
		Time:     time.Now(),
	})
	return nil
}

// RemoveItemFromFrame detaches the T-typed item with id from frame, then
// publishes ITEM_REMOVED_FROM_FRAME. Returns ErrUnknownFrame or
// ErrUnknownItem.
func RemoveItemFromFrame[T any](eg *EnvireGraph, frame spatial.FrameId, id uuid.UUID) (*core.Item[T], error) {
	f, err := eg.frame(frame)
	if err != nil {
		return nil, err
	}
	removed, err := core.RemoveItemFromFrame[T](f, id)
	if err != nil {
		return nil, err
	}

	eg.publisher.Notify(events.Event{
		Kind:     events.ItemRemovedFromFrame,
		Frame:    frame,
		ItemID:   removed.ID(),
		ItemType: removed.TypeTag(),
		Time:     time.Now(),
	})
	return removed, nil
}

// GetItems returns every T-typed item attached to frame.
func GetItems[T any](eg *EnvireGraph, frame spatial.FrameId) ([]*core.Item[T], error) {
	f, err := eg.frame(frame)
	if err != nil {
		return nil, err
	}
	return core.GetItems[T](f), nil
}

// GetItemCount returns the number of T-typed items attached to frame.
func GetItemCount[T any](eg *EnvireGraph, frame spatial.FrameId) (int, error) {
	f, err := eg.frame(frame)
	if err != nil {
		return 0, err
	}
	return core.GetItemCount[T](f), nil
}

// ContainsItems reports whether frame has at least one T-typed item.
func ContainsItems[T any](eg *EnvireGraph, frame spatial.FrameId) (bool, error) {
	f, err := eg.frame(frame)
	if err != nil {
		return false, err
	}
	return core.ContainsItems[T](f), nil
}

// GetTotalItemCount returns the number of items attached to frame across
// every type.
func (eg *EnvireGraph) GetTotalItemCount(frame spatial.FrameId) (int, error) {
	f, err := eg.frame(frame)
	if err != nil {
		return 0, err
	}
	return core.GetTotalItemCount(f), nil
}

// ClearFrame detaches every item from frame, publishing one
// ITEM_REMOVED_FROM_FRAME per item, in deterministic order.
func (eg *EnvireGraph) ClearFrame(frame spatial.FrameId) error {
	f, err := eg.frame(frame)
	if err != nil {
		return err
	}
	for _, h := range core.ClearFrame(f) {
		eg.publisher.Notify(events.Event{
			Kind:     events.ItemRemovedFromFrame,
			Frame:    frame,
			ItemID:   h.ID(),
			ItemType: h.TypeTag(),
			Time:     time.Now(),
		})
	}
	return nil
}
