// File: methods_edges.go
// Role: Graph's edge-lifecycle methods. Every logical connection between
// two frames is stored as a forward/inverse pair, added and removed
// together; none of these methods ever leaves only one half behind.

package core

import (
	"fmt"

	"github.com/katalvlaran/envgraph/spatial"
)

// AddTransform inserts a new directed edge from origin to target carrying
// prop, plus its inverse (prop.Inverse()) from target to origin. Either
// frame that does not yet exist is created first (see FrameFactory on
// NewGraph), emitting FrameAdded before the edge's own EdgeAdded; if g
// has no factory this instead surfaces as ErrUnknownFrame. Returns
// ErrEmptyFrameId, before creating any frame, if either id is "".
// Returns ErrEdgeAlreadyExists if a directed edge already connects
// origin and target.
func (g *Graph[FP, EP]) AddTransform(origin, target spatial.FrameId, prop EP) error {
	if origin.Empty() || target.Empty() {
		return ErrEmptyFrameId
	}
	originH, err := g.ensureFrame(origin)
	if err != nil {
		return err
	}
	targetH, err := g.ensureFrame(target)
	if err != nil {
		return err
	}
	if _, exists := g.adjacency[originH][targetH]; exists {
		return fmt.Errorf("%w: %s -> %s", ErrEdgeAlreadyExists, origin, target)
	}

	g.adjacency[originH][targetH] = prop
	g.adjacency[targetH][originH] = prop.Inverse()

	g.sink.EdgeAdded(origin, target, prop)
	return nil
}

// UpdateTransform replaces the transform carried by the edge between
// origin and target (in both directions) without disturbing either
// frame's other edges. Returns ErrUnknownEdge if no edge connects them.
func (g *Graph[FP, EP]) UpdateTransform(origin, target spatial.FrameId, tf spatial.Transform) error {
	originH, err := g.handleOf(origin)
	if err != nil {
		return err
	}
	targetH, err := g.handleOf(target)
	if err != nil {
		return err
	}
	prop, exists := g.adjacency[originH][targetH]
	if !exists {
		return fmt.Errorf("%w: %s -> %s", ErrUnknownEdge, origin, target)
	}

	newProp := prop.WithTransform(tf)
	newInverse := newProp.Inverse()
	g.adjacency[originH][targetH] = newProp
	g.adjacency[targetH][originH] = newInverse

	g.sink.EdgeModified(origin, target, newProp, newInverse)
	return nil
}

// RemoveTransform deletes the edge between origin and target in both
// directions. Returns ErrUnknownEdge if no edge connects them.
func (g *Graph[FP, EP]) RemoveTransform(origin, target spatial.FrameId) error {
	originH, err := g.handleOf(origin)
	if err != nil {
		return err
	}
	targetH, err := g.handleOf(target)
	if err != nil {
		return err
	}
	if _, exists := g.adjacency[originH][targetH]; !exists {
		return fmt.Errorf("%w: %s -> %s", ErrUnknownEdge, origin, target)
	}

	delete(g.adjacency[originH], targetH)
	delete(g.adjacency[targetH], originH)

	g.sink.EdgeRemoved(origin, target)
	return nil
}

// GetEdge returns the directed edge property from origin to target.
// Returns ErrUnknownEdge if no such directed edge exists.
func (g *Graph[FP, EP]) GetEdge(origin, target spatial.FrameId) (EP, error) {
	originH, err := g.handleOf(origin)
	if err != nil {
		var zero EP
		return zero, err
	}
	targetH, err := g.handleOf(target)
	if err != nil {
		var zero EP
		return zero, err
	}
	prop, exists := g.adjacency[originH][targetH]
	if !exists {
		var zero EP
		return zero, fmt.Errorf("%w: %s -> %s", ErrUnknownEdge, origin, target)
	}
	return prop, nil
}

// HasEdge reports whether a directed edge connects origin to target.
func (g *Graph[FP, EP]) HasEdge(origin, target spatial.FrameId) bool {
	originH, ok := g.idToHandle[origin]
	if !ok {
		return false
	}
	targetH, ok := g.idToHandle[target]
	if !ok {
		return false
	}
	_, exists := g.adjacency[originH][targetH]
	return exists
}

// NumEdges returns the number of logical (undirected) connections in g;
// each contributes two directed entries to the adjacency index.
func (g *Graph[FP, EP]) NumEdges() int {
	total := 0
	for _, neighbors := range g.adjacency {
		total += len(neighbors)
	}
	return total / 2
}

// Neighbors returns the frame ids directly connected to id, sorted
// ascending. Returns ErrUnknownFrame if id is absent.
func (g *Graph[FP, EP]) Neighbors(id spatial.FrameId) ([]spatial.FrameId, error) {
	h, err := g.handleOf(id)
	if err != nil {
		return nil, err
	}
	out := make([]spatial.FrameId, 0, len(g.adjacency[h]))
	for nh := range g.adjacency[h] {
		out = append(out, g.handleToID[nh])
	}
	sortFrameIDs(out)
	return out, nil
}
