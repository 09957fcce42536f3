package core

import "errors"

// Sentinel errors for core graph operations. Every failure surfaces at the
// call site; no operation swallows an error or leaves the graph partially
// mutated.
var (
	// ErrEmptyFrameId indicates an empty FrameId was used where a
	// non-empty one is required.
	ErrEmptyFrameId = errors.New("core: frame id is empty")

	// ErrFrameAlreadyExists indicates AddFrame was called with an id that
	// already names a frame in this graph.
	ErrFrameAlreadyExists = errors.New("core: frame already exists")

	// ErrUnknownFrame indicates an operation referenced a frame id that is
	// not present in the graph.
	ErrUnknownFrame = errors.New("core: unknown frame")

	// ErrFrameStillConnected indicates RemoveFrame was called on a frame
	// that still has one or more incident edges.
	ErrFrameStillConnected = errors.New("core: frame still connected")

	// ErrEdgeAlreadyExists indicates AddTransform was called for an
	// (origin,target) pair where either direction already has an edge.
	ErrEdgeAlreadyExists = errors.New("core: edge already exists")

	// ErrUnknownEdge indicates GetEdge, UpdateTransform or RemoveTransform
	// was called for a directed edge that does not exist.
	ErrUnknownEdge = errors.New("core: unknown edge")

	// ErrUnknownTransform indicates a transitive GetTransform query found
	// no path between the requested frames.
	ErrUnknownTransform = errors.New("core: no path between frames")

	// ErrUnknownItem indicates RemoveItemFromFrame was called with an item
	// that is not indexed under its own frame back-reference.
	ErrUnknownItem = errors.New("core: item not found in its frame")

	// ErrFrameAlreadySet indicates AddItemToFrame was called with an item
	// whose frame back-reference is already non-empty.
	ErrFrameAlreadySet = errors.New("core: item already attached to a frame")
)
