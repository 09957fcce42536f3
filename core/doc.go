// Package core provides Item, Frame, Edge and the generic Graph skeleton:
// a directed graph of named Frames connected by Transform-carrying Edges,
// where every logical connection is stored as a forward/inverse edge pair.
//
// The Graph G = (V,E) is generic over a frame-property type FP and an
// edge-property type EP:
//
//   - FP must expose a FrameName(); EnvireGraph instantiates it with *Frame.
//   - EP must expose Transform()/WithTransform()/Inverse()/Time(); EnvireGraph
//     instantiates it with *Edge.
//
// Why use core.Graph?
//
//   - Bidirectional edge pairing is enforced centrally: AddTransform,
//     UpdateTransform and RemoveTransform only ever mutate both directions
//     together, so the transform-inverse invariant can't be violated by a
//     caller reaching in from outside.
//   - FrameId <-> internal frameHandle is a bijection, giving O(1) frame
//     comparison without hashing strings on every graph-internal edge.
//   - GetTransform resolves both the direct (single-hop) and the transitive
//     (BFS-composed) case behind one call.
//   - GetTree produces a deterministic BFS tree view rooted at any frame.
//
// Concurrency: none of this package's types are safe for concurrent
// mutation from multiple goroutines. Callers synchronize externally;
// unlike this codebase's generic-graph ancestor, Graph carries no mutex.
//
// Errors:
//
//	ErrEmptyFrameId       - frame id is the empty string.
//	ErrFrameAlreadyExists - AddFrame with an id already present.
//	ErrUnknownFrame       - operation referenced a frame that doesn't exist.
//	ErrFrameStillConnected - RemoveFrame on a frame with incident edges.
//	ErrEdgeAlreadyExists  - AddTransform when either direction already exists.
//	ErrUnknownEdge        - GetEdge/UpdateTransform/RemoveTransform on a missing edge.
//	ErrUnknownTransform   - transitive GetTransform found no path.
//	ErrUnknownItem        - RemoveItemFromFrame for an item not in any index.
//	ErrFrameAlreadySet    - AddItemToFrame on an item already attached to a frame.
package core
