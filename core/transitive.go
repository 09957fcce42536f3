// File: transitive.go
// Role: transitive GetTransform, composing a path of direct edges between
// two frames that need not be directly connected. A breadth-first walk
// (queue item + visited map + FIFO loop) that carries the composed
// Transform with each queued frame instead of a distance.

package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/envgraph/spatial"
)

// pathQueueItem pairs a frame handle with the composed transform from the
// query's origin to that handle.
type pathQueueItem struct {
	handle    frameHandle
	transform spatial.Transform
}

// GetTransform returns the transform taking a point expressed in origin's
// frame into target's frame, composing direct edges along the shortest
// path (in edge count) between them. When several shortest paths exist,
// the one discovered by visiting neighbors in ascending FrameId order is
// used, making the result deterministic.
//
// Returns ErrUnknownFrame if either frame is absent, ErrUnknownTransform
// if no path connects them. origin == target returns the identity
// transform without consulting the graph.
func (g *Graph[FP, EP]) GetTransform(origin, target spatial.FrameId) (spatial.Transform, error) {
	if origin == target {
		if _, err := g.handleOf(origin); err != nil {
			return spatial.Transform{}, err
		}
		return spatial.Identity(), nil
	}

	originH, err := g.handleOf(origin)
	if err != nil {
		return spatial.Transform{}, err
	}
	targetH, err := g.handleOf(target)
	if err != nil {
		return spatial.Transform{}, err
	}

	visited := map[frameHandle]bool{originH: true}
	queue := []pathQueueItem{{handle: originH, transform: spatial.Identity()}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.handle == targetH {
			return cur.transform, nil
		}

		for _, nh := range g.sortedNeighborHandles(cur.handle) {
			if visited[nh] {
				continue
			}
			visited[nh] = true
			edge := g.adjacency[cur.handle][nh]
			queue = append(queue, pathQueueItem{
				handle:    nh,
				transform: cur.transform.Compose(edge.Transform()),
			})
		}
	}

	return spatial.Transform{}, fmt.Errorf("%w: %s -> %s", ErrUnknownTransform, origin, target)
}

// sortedNeighborHandles returns h's neighbor handles ordered by their
// FrameId, giving transitive traversal a deterministic visit order.
func (g *Graph[FP, EP]) sortedNeighborHandles(h frameHandle) []frameHandle {
	neighbors := g.adjacency[h]
	out := make([]frameHandle, 0, len(neighbors))
	for nh := range neighbors {
		out = append(out, nh)
	}
	sort.Slice(out, func(i, j int) bool {
		return g.handleToID[out[i]] < g.handleToID[out[j]]
	})
	return out
}
