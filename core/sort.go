// File: sort.go
// Role: the single ascending-FrameId ordering used everywhere core needs
// deterministic iteration (neighbor visit order in transitive.go and
// tree.go, Neighbors(), FrameIDs()).

package core

import (
	"sort"

	"github.com/katalvlaran/envgraph/spatial"
)

func sortFrameIDs(ids []spatial.FrameId) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
