// File: edge.go
// Role: Edge, the directed Transform-carrying connection between two
// frames. Every logical edge is stored as two Edge values — forward and
// inverse — kept consistent by Graph, never mutated directly by callers.

package core

import (
	"time"

	"github.com/katalvlaran/envgraph/spatial"
)

// Edge is one direction of a transform between two frames. It implements
// EdgeProperty[*Edge].
type Edge struct {
	transform spatial.Transform
	timestamp time.Time
}

// NewEdge constructs an Edge carrying tf, timestamped now.
func NewEdge(tf spatial.Transform) *Edge {
	return &Edge{transform: tf, timestamp: time.Now()}
}

// Transform returns the edge's transform, satisfying EdgeProperty.
func (e *Edge) Transform() spatial.Transform {
	return e.transform
}

// WithTransform returns a copy of e carrying tf instead, satisfying
// EdgeProperty. The timestamp is preserved; callers that want a fresh
// timestamp set it explicitly via SetTime.
func (e *Edge) WithTransform(tf spatial.Transform) *Edge {
	return &Edge{transform: tf, timestamp: e.timestamp}
}

// Inverse returns a copy of e carrying the inverted transform, satisfying
// EdgeProperty.
func (e *Edge) Inverse() *Edge {
	return &Edge{transform: e.transform.Invert(), timestamp: e.timestamp}
}

// Time returns the edge's timestamp, satisfying EdgeProperty.
func (e *Edge) Time() time.Time {
	return e.timestamp
}

// SetTime overwrites the edge's timestamp.
func (e *Edge) SetTime(t time.Time) {
	e.timestamp = t
}
