// File: methods_clone.go
// Role: structural cloning, used by EnvireGraph's filtered-copy
// constructor. Adapted from this module's own Clone/CloneEmpty pair:
// CloneEmpty copies frames only, Clone copies frames and edges. Unlike
// the graph this was adapted from, a clone never carries over the
// source's event sink — the caller wires whichever sink the clone
// should publish to (or none).
package core

// CloneEmpty returns a new Graph with the same frames as g (same ids and
// properties, by value/reference as FP itself is a pointer or value) but
// no edges. Property values are not deep-copied; callers whose FP/EP are
// pointer types are responsible for cloning pointee state themselves
// (see envgraph.EnvireGraph.Copy, which clones Frame contents item by
// item).
func (g *Graph[FP, EP]) CloneEmpty(sink EventSink[FP, EP]) *Graph[FP, EP] {
	clone := NewGraph[FP, EP](sink, g.newFrame)
	for id, h := range g.idToHandle {
		clone.idToHandle[id] = h
		clone.handleToID[h] = id
		clone.props[h] = g.props[h]
		clone.adjacency[h] = make(map[frameHandle]EP)
	}
	clone.nextHandle = g.nextHandle
	return clone
}

// Clone returns a deep structural copy of g: every frame and every
// directed edge, with the clone's own event sink.
func (g *Graph[FP, EP]) Clone(sink EventSink[FP, EP]) *Graph[FP, EP] {
	clone := g.CloneEmpty(sink)
	for h, neighbors := range g.adjacency {
		for nh, prop := range neighbors {
			clone.adjacency[h][nh] = prop
		}
	}
	return clone
}
