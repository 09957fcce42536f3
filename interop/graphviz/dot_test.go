package graphviz_test

import (
	"testing"

	"github.com/katalvlaran/envgraph/envgraph"
	"github.com/katalvlaran/envgraph/interop/graphviz"
	"github.com/katalvlaran/envgraph/spatial"
	"github.com/stretchr/testify/require"
)

func buildPath(t *testing.T) *envgraph.EnvireGraph {
	t.Helper()
	eg := envgraph.New()
	require.NoError(t, eg.AddFrame("a"))
	require.NoError(t, eg.AddFrame("b"))
	require.NoError(t, eg.AddFrame("c"))

	unit := spatial.NewTransform(spatial.Vector3{X: 1}, spatial.IdentityQuaternion(), spatial.ZeroCovariance6())
	require.NoError(t, eg.AddTransform("a", "b", unit))
	require.NoError(t, eg.AddTransform("b", "c", unit))
	return eg
}

func TestToDOT_EmitsOneLinePerLogicalEdge(t *testing.T) {
	t.Parallel()
	eg := buildPath(t)

	dot, err := graphviz.ToDOT(eg, graphviz.Options{})
	require.NoError(t, err)
	require.Contains(t, dot, `"a" -- "b"`)
	require.Contains(t, dot, `"b" -- "c"`)
	require.NotContains(t, dot, `"b" -- "a"`)
	require.NotContains(t, dot, `"c" -- "b"`)
}

func TestToDOT_DetailedIncludesTranslationLabel(t *testing.T) {
	t.Parallel()
	eg := buildPath(t)

	dot, err := graphviz.ToDOT(eg, graphviz.Options{Detailed: true})
	require.NoError(t, err)
	require.Contains(t, dot, "1.000, 0.000, 0.000")
}

func TestToDOT_EmptyGraphHasNoNodesOrEdges(t *testing.T) {
	t.Parallel()
	eg := envgraph.New()
	dot, err := graphviz.ToDOT(eg, graphviz.Options{})
	require.NoError(t, err)
	require.Equal(t, "graph G {\n  rankdir=LR;\n  bgcolor=\"transparent\";\n  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n\n\n}\n", dot)
}
