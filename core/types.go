// File: types.go
// Role: the generic Graph[FP,EP] skeleton, its type parameters, and the
// frameHandle indirection that keeps FrameId <-> internal handle a
// bijection.

package core

import (
	"fmt"
	"time"

	"github.com/katalvlaran/envgraph/spatial"
)

// FrameProperty is the constraint a Graph's frame-property type parameter
// must satisfy: it must be able to name itself.
type FrameProperty interface {
	FrameName() spatial.FrameId
}

// EdgeProperty is the constraint a Graph's edge-property type parameter
// must satisfy: it must expose its Transform, be able to produce a copy
// carrying a different Transform, produce its own inverse, and report a
// timestamp. Self is the concrete edge-property type itself (so
// WithTransform/Inverse can return that type rather than the interface).
type EdgeProperty[Self any] interface {
	Transform() spatial.Transform
	WithTransform(spatial.Transform) Self
	Inverse() Self
	Time() time.Time
}

// FrameFactory constructs the property value for a frame that
// AddTransform creates lazily because it did not already exist. A Graph
// built with a nil factory rejects AddTransform on an absent frame with
// ErrUnknownFrame instead.
type FrameFactory[FP FrameProperty] func(id spatial.FrameId) FP

// frameHandle is the internal, process-local identifier for a frame. It
// exists so the hot paths (adjacency lookups) never hash a string: FrameId
// is resolved to a frameHandle once at the API boundary, never stored in
// a loop. The mapping FrameId<->frameHandle is a bijection for the
// lifetime of a frame; RemoveFrame retires a handle, AddFrame never
// reuses a retired one.
type frameHandle uint64

// Graph is a directed graph of frames (FP) connected by transform-carrying
// edges (EP). Every logical connection between two frames is stored as a
// pair of Graph-internal edges, forward and inverse, kept in lockstep by
// AddTransform/UpdateTransform/RemoveTransform; callers never see or
// construct one half of a pair without the other.
//
// Graph is not safe for concurrent use: callers synchronize externally,
// same as every other type in this module (see package doc).
type Graph[FP FrameProperty, EP EdgeProperty[EP]] struct {
	nextHandle frameHandle
	idToHandle map[spatial.FrameId]frameHandle
	handleToID map[frameHandle]spatial.FrameId
	props      map[frameHandle]FP
	adjacency  map[frameHandle]map[frameHandle]EP
	sink       EventSink[FP, EP]
	newFrame   FrameFactory[FP]
}

// NewGraph constructs an empty Graph. sink may be nil, in which case
// structural mutations are silently discarded (useful for tests that
// exercise the generic skeleton in isolation from the event bus).
// newFrame may also be nil, in which case AddTransform never creates a
// frame on demand and instead fails with ErrUnknownFrame, same as every
// other method that takes an existing frame id.
func NewGraph[FP FrameProperty, EP EdgeProperty[EP]](sink EventSink[FP, EP], newFrame FrameFactory[FP]) *Graph[FP, EP] {
	if sink == nil {
		sink = nopSink[FP, EP]{}
	}
	return &Graph[FP, EP]{
		idToHandle: make(map[spatial.FrameId]frameHandle),
		handleToID: make(map[frameHandle]spatial.FrameId),
		props:      make(map[frameHandle]FP),
		adjacency:  make(map[frameHandle]map[frameHandle]EP),
		sink:       sink,
		newFrame:   newFrame,
	}
}

// handleOf resolves id to its internal handle, or ErrUnknownFrame.
func (g *Graph[FP, EP]) handleOf(id spatial.FrameId) (frameHandle, error) {
	h, ok := g.idToHandle[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownFrame, id)
	}
	return h, nil
}

// ensureFrame resolves id to its handle, creating the frame via newFrame
// (and emitting FrameAdded) if it is not already present. Returns
// ErrUnknownFrame if id is absent and g has no factory.
func (g *Graph[FP, EP]) ensureFrame(id spatial.FrameId) (frameHandle, error) {
	if h, ok := g.idToHandle[id]; ok {
		return h, nil
	}
	if g.newFrame == nil {
		return 0, fmt.Errorf("%w: %s", ErrUnknownFrame, id)
	}
	if err := g.AddFrame(id, g.newFrame(id)); err != nil {
		return 0, err
	}
	return g.idToHandle[id], nil
}
