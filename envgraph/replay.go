// File: replay.go
// Role: EnvireGraph's implementation of events.StateReplayer, the
// synthetic-event replay that brings a fresh subscriber's view in line
// with the graph's current contents (or tears it back down again).
// Mirrors the ordering GraphEventPublisher::subscribe(sub,
// publish_current_state) guarantees in the original: frames, then
// edges, then items going forward; items, then edges, then frames going
// back. The traversal itself has no captured upstream source -- the
// original's publishCurrentState/unpublishCurrentState are pure virtual,
// overridden by the concrete EnvireGraph that isn't part of this
// module's retrieval pack -- so it is grounded only in that ordering
// guarantee.

package envgraph

import (
	"time"

	"github.com/katalvlaran/envgraph/core"
	"github.com/katalvlaran/envgraph/events"
	"github.com/katalvlaran/envgraph/spatial"
)

// PublishCurrentState satisfies events.StateReplayer: one FrameAdded per
// frame (ascending id), then one EdgeAdded per logical connection
// (ascending origin, then ascending target -- the same canonical
// direction Copy uses to visit each connection once), then one
// ItemAddedToFrame per attached item, frame by frame in the same
// ascending order.
func (eg *EnvireGraph) PublishCurrentState(emit func(events.Event)) {
	ids := eg.FrameIDs()
	now := time.Now()

	for _, id := range ids {
		emit(events.Event{Kind: events.FrameAdded, Frame: id, Time: now})
	}

	eg.forEachLogicalEdge(func(origin, target spatial.FrameId) {
		emit(events.Event{Kind: events.EdgeAdded, Origin: origin, Target: target, Time: now})
	})

	for _, id := range ids {
		f, err := eg.frame(id)
		if err != nil {
			continue // unreachable: id came from eg.FrameIDs()
		}
		for _, ref := range core.ItemRefs(f) {
			emit(events.Event{Kind: events.ItemAddedToFrame, Frame: id, ItemID: ref.ID, ItemType: ref.Tag, Time: now})
		}
	}
}

// UnpublishCurrentState satisfies events.StateReplayer with the exact
// inverse of PublishCurrentState: one ItemRemovedFromFrame per item, then
// one EdgeRemoved per logical connection, then one FrameRemoved per
// frame, each set emitted in the reverse of PublishCurrentState's order.
func (eg *EnvireGraph) UnpublishCurrentState(emit func(events.Event)) {
	ids := eg.FrameIDs()
	now := time.Now()

	for i := len(ids) - 1; i >= 0; i-- {
		f, err := eg.frame(ids[i])
		if err != nil {
			continue
		}
		refs := core.ItemRefs(f)
		for j := len(refs) - 1; j >= 0; j-- {
			emit(events.Event{Kind: events.ItemRemovedFromFrame, Frame: ids[i], ItemID: refs[j].ID, ItemType: refs[j].Tag, Time: now})
		}
	}

	var edges []events.Event
	eg.forEachLogicalEdge(func(origin, target spatial.FrameId) {
		edges = append(edges, events.Event{Kind: events.EdgeRemoved, Origin: origin, Target: target, Time: now})
	})
	for i := len(edges) - 1; i >= 0; i-- {
		emit(edges[i])
	}

	for i := len(ids) - 1; i >= 0; i-- {
		emit(events.Event{Kind: events.FrameRemoved, Frame: ids[i], Time: now})
	}
}

// forEachLogicalEdge calls fn once per undirected connection in eg, with
// origin always the lexicographically smaller of the pair's two
// FrameIds, so each connection is visited exactly once regardless of
// which direction it was originally added in.
func (eg *EnvireGraph) forEachLogicalEdge(fn func(origin, target spatial.FrameId)) {
	for _, id := range eg.FrameIDs() {
		neighbors, err := eg.Neighbors(id)
		if err != nil {
			continue
		}
		for _, nb := range neighbors {
			if nb <= id {
				continue
			}
			fn(id, nb)
		}
	}
}
