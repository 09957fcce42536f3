// File: copy.go
// Role: the filtered deep-copy constructor. Adapted from this codebase's
// Clone/CloneEmpty pair in core/methods_clone.go, generalized to also
// copy item contents (via core.CopyItems) and to let the caller drop
// frames or item types it does not want duplicated.

package envgraph

import (
	"github.com/katalvlaran/envgraph/core"
	"github.com/katalvlaran/envgraph/spatial"
)

// CopyFilter controls what Copy duplicates. A nil field keeps
// everything of that kind.
type CopyFilter struct {
	KeepFrame func(id spatial.FrameId) bool
	KeepItem  func(id spatial.FrameId, tag core.TypeTag) bool
}

func (f CopyFilter) keepsFrame(id spatial.FrameId) bool {
	return f.KeepFrame == nil || f.KeepFrame(id)
}

// Copy returns a deep, independent copy of eg: every kept frame, every
// edge between two kept frames, and every kept item, re-attached with
// its original UUID preserved (see core.Item.Clone). The copy has its
// own event bus with no subscribers.
func (eg *EnvireGraph) Copy(filter CopyFilter) *EnvireGraph {
	out := New()

	for _, id := range eg.FrameIDs() {
		if !filter.keepsFrame(id) {
			continue
		}
		if err := out.AddFrame(id); err != nil {
			continue // unreachable: fresh graph, ids are unique
		}

		srcFrame, err := eg.frame(id)
		if err != nil {
			continue // unreachable: id came from eg.FrameIDs()
		}
		dstFrame, _ := out.frame(id)

		var keepItem func(core.TypeTag) bool
		if filter.KeepItem != nil {
			keepItem = func(tag core.TypeTag) bool { return filter.KeepItem(id, tag) }
		}
		core.CopyItems(dstFrame, srcFrame, keepItem)
	}

	for _, id := range eg.FrameIDs() {
		if !filter.keepsFrame(id) {
			continue
		}
		neighbors, err := eg.g.Neighbors(id)
		if err != nil {
			continue
		}
		for _, nb := range neighbors {
			if nb <= id || !filter.keepsFrame(nb) {
				continue
			}
			edge, err := eg.g.GetEdge(id, nb)
			if err != nil {
				continue
			}
			// Copy the edge value rather than share the pointer: the
			// source graph's edge may still be mutated in place via
			// SetTime after this Copy call.
			_ = out.g.AddTransform(id, nb, edge.WithTransform(edge.Transform()))
		}
	}

	return out
}
