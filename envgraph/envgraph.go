// File: envgraph.go
// Role: EnvireGraph, the concrete item-aware graph: a
// core.Graph[*core.Frame, *core.Edge] plus the *events.Publisher every
// mutating method reports to.

package envgraph

import (
	"github.com/katalvlaran/envgraph/core"
	"github.com/katalvlaran/envgraph/events"
	"github.com/katalvlaran/envgraph/spatial"
)

// EnvireGraph is a directed graph of named, item-carrying frames
// connected by transform-carrying edges, with structural mutations
// announced over an event bus.
type EnvireGraph struct {
	g         *core.Graph[*core.Frame, *core.Edge]
	publisher *events.Publisher
}

// New constructs an empty EnvireGraph.
func New() *EnvireGraph {
	eg := &EnvireGraph{publisher: events.NewPublisher()}
	eg.g = core.NewGraph[*core.Frame, *core.Edge](&graphSink{publisher: eg.publisher}, core.NewFrame)
	eg.publisher.SetReplayer(eg)
	return eg
}

// Subscribe registers s on eg's event bus. If publishCurrentState is
// true, s first receives a synthetic replay of eg's entire current
// structure (frames, then edges, then items -- see PublishCurrentState)
// before joining the live subscriber list, so it never misses an event
// for something that already existed. See events.Publisher.Subscribe for
// reentrancy semantics.
func (eg *EnvireGraph) Subscribe(s events.Subscriber, publishCurrentState bool) {
	eg.publisher.Subscribe(s, publishCurrentState)
}

// Unsubscribe removes s from eg's event bus. If unpublishCurrentState is
// true, s first receives the inverse replay (items, then edges, then
// frames -- see UnpublishCurrentState) before it stops receiving
// anything.
func (eg *EnvireGraph) Unsubscribe(s events.Subscriber, unpublishCurrentState bool) {
	eg.publisher.Unsubscribe(s, unpublishCurrentState)
}

// Close detaches every subscriber from eg's event bus, the Go
// counterpart of the original's destructor-driven subscriber
// detachment (see events.Publisher.Close).
func (eg *EnvireGraph) Close() {
	eg.publisher.Close()
}

// AddFrame inserts a new, empty frame named id.
func (eg *EnvireGraph) AddFrame(id spatial.FrameId) error {
	return eg.g.AddFrame(id, core.NewFrame(id))
}

// HasFrame reports whether id names a frame in eg.
func (eg *EnvireGraph) HasFrame(id spatial.FrameId) bool {
	return eg.g.HasFrame(id)
}

// RemoveFrame deletes frame id. The frame must have no incident edges
// (see core.Graph.RemoveFrame); any attached items are silently
// dropped along with the frame.
func (eg *EnvireGraph) RemoveFrame(id spatial.FrameId) error {
	return eg.g.RemoveFrame(id)
}

// NumFrames returns the number of frames in eg.
func (eg *EnvireGraph) NumFrames() int {
	return eg.g.NumFrames()
}

// FrameIDs returns every frame id in eg, sorted ascending.
func (eg *EnvireGraph) FrameIDs() []spatial.FrameId {
	return eg.g.FrameIDs()
}

// frame resolves id to its *core.Frame without exposing the frame
// catalog directly; used internally and by the generic item functions
// in items.go.
func (eg *EnvireGraph) frame(id spatial.FrameId) (*core.Frame, error) {
	return eg.g.FrameProperty(id)
}

// AddTransform inserts an edge carrying tf from origin to target, and
// its inverse from target to origin. Either frame that does not yet
// exist is created first, each emitting its own FrameAdded before the
// edge's EdgeAdded.
func (eg *EnvireGraph) AddTransform(origin, target spatial.FrameId, tf spatial.Transform) error {
	return eg.g.AddTransform(origin, target, core.NewEdge(tf))
}

// UpdateTransform replaces the transform of the edge between origin and
// target (in both directions).
func (eg *EnvireGraph) UpdateTransform(origin, target spatial.FrameId, tf spatial.Transform) error {
	return eg.g.UpdateTransform(origin, target, tf)
}

// RemoveTransform deletes the edge between origin and target, in both
// directions.
func (eg *EnvireGraph) RemoveTransform(origin, target spatial.FrameId) error {
	return eg.g.RemoveTransform(origin, target)
}

// GetEdge returns the directed edge property from origin to target.
func (eg *EnvireGraph) GetEdge(origin, target spatial.FrameId) (*core.Edge, error) {
	return eg.g.GetEdge(origin, target)
}

// GetTransform returns the transform from origin's frame to target's
// frame, direct or composed transitively across the shortest path.
func (eg *EnvireGraph) GetTransform(origin, target spatial.FrameId) (spatial.Transform, error) {
	return eg.g.GetTransform(origin, target)
}

// GetTree returns the breadth-first spanning tree of eg rooted at root.
func (eg *EnvireGraph) GetTree(root spatial.FrameId) (*core.TreeView, error) {
	return eg.g.GetTree(root)
}

// NumEdges returns the number of logical (undirected) connections in eg.
func (eg *EnvireGraph) NumEdges() int {
	return eg.g.NumEdges()
}

// Neighbors returns the frame ids directly connected to id, sorted
// ascending.
func (eg *EnvireGraph) Neighbors(id spatial.FrameId) ([]spatial.FrameId, error) {
	return eg.g.Neighbors(id)
}
