// File: tree.go
// Role: GetTree, a breadth-first spanning tree over the whole graph from
// a chosen root, used by consumers that need a rooted view (e.g. a
// GraphViz export) rather than a single transform. Same walker shape as
// transitive.go.

package core

import "github.com/katalvlaran/envgraph/spatial"

// TreeView is a breadth-first spanning tree of a Graph rooted at Root.
// Parent and Depth cover every frame reachable from Root; Children lists
// each frame's direct tree children in ascending FrameId order.
// CrossEdges lists every edge discovered during the walk that was not
// used as a tree edge (the graph is not itself a tree, in general).
type TreeView struct {
	Root       spatial.FrameId
	Parent     map[spatial.FrameId]spatial.FrameId
	Depth      map[spatial.FrameId]int
	Children   map[spatial.FrameId][]spatial.FrameId
	CrossEdges [][2]spatial.FrameId
}

// treeQueueItem pairs a frame handle with its BFS depth.
type treeQueueItem struct {
	handle frameHandle
	depth  int
}

// GetTree returns the breadth-first spanning tree of g rooted at root.
// Returns ErrUnknownFrame if root is absent.
func (g *Graph[FP, EP]) GetTree(root spatial.FrameId) (*TreeView, error) {
	rootH, err := g.handleOf(root)
	if err != nil {
		return nil, err
	}

	view := &TreeView{
		Root:     root,
		Parent:   make(map[spatial.FrameId]spatial.FrameId),
		Depth:    map[spatial.FrameId]int{root: 0},
		Children: make(map[spatial.FrameId][]spatial.FrameId),
	}

	visited := map[frameHandle]bool{rootH: true}
	queue := []treeQueueItem{{handle: rootH, depth: 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curID := g.handleToID[cur.handle]

		for _, nh := range g.sortedNeighborHandles(cur.handle) {
			nID := g.handleToID[nh]
			if visited[nh] {
				if view.Parent[curID] != nID && curID < nID {
					view.CrossEdges = append(view.CrossEdges, [2]spatial.FrameId{curID, nID})
				}
				continue
			}
			visited[nh] = true
			view.Parent[nID] = curID
			view.Depth[nID] = cur.depth + 1
			view.Children[curID] = append(view.Children[curID], nID)
			queue = append(queue, treeQueueItem{handle: nh, depth: cur.depth + 1})
		}
	}

	return view, nil
}
