// File: methods_frames.go
// Role: Graph's frame-lifecycle methods (add, remove, query).

package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/envgraph/spatial"
)

// AddFrame inserts a new frame named id carrying property fp. Returns
// ErrEmptyFrameId if id is "", ErrFrameAlreadyExists if id is already
// present.
func (g *Graph[FP, EP]) AddFrame(id spatial.FrameId, fp FP) error {
	if id.Empty() {
		return ErrEmptyFrameId
	}
	if _, exists := g.idToHandle[id]; exists {
		return fmt.Errorf("%w: %s", ErrFrameAlreadyExists, id)
	}

	h := g.nextHandle
	g.nextHandle++
	g.idToHandle[id] = h
	g.handleToID[h] = id
	g.props[h] = fp
	g.adjacency[h] = make(map[frameHandle]EP)

	g.sink.FrameAdded(id, fp)
	return nil
}

// HasFrame reports whether id names a frame in g.
func (g *Graph[FP, EP]) HasFrame(id spatial.FrameId) bool {
	_, ok := g.idToHandle[id]
	return ok
}

// FrameProperty returns the property attached to frame id, or
// ErrUnknownFrame.
func (g *Graph[FP, EP]) FrameProperty(id spatial.FrameId) (FP, error) {
	h, err := g.handleOf(id)
	if err != nil {
		var zero FP
		return zero, err
	}
	return g.props[h], nil
}

// RemoveFrame deletes frame id. Returns ErrUnknownFrame if it does not
// exist, ErrFrameStillConnected if it has any incident edge (the caller
// must RemoveTransform every incident edge first).
func (g *Graph[FP, EP]) RemoveFrame(id spatial.FrameId) error {
	h, err := g.handleOf(id)
	if err != nil {
		return err
	}
	if len(g.adjacency[h]) > 0 {
		return fmt.Errorf("%w: %s", ErrFrameStillConnected, id)
	}

	delete(g.idToHandle, id)
	delete(g.handleToID, h)
	delete(g.props, h)
	delete(g.adjacency, h)

	g.sink.FrameRemoved(id)
	return nil
}

// NumFrames returns the number of frames currently in g.
func (g *Graph[FP, EP]) NumFrames() int {
	return len(g.idToHandle)
}

// FrameIDs returns every frame id in g, sorted ascending.
func (g *Graph[FP, EP]) FrameIDs() []spatial.FrameId {
	out := make([]spatial.FrameId, 0, len(g.idToHandle))
	for id := range g.idToHandle {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
