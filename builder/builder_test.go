package builder_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/envgraph/builder"
	"github.com/katalvlaran/envgraph/spatial"
	"github.com/stretchr/testify/require"
)

func TestChain_LinksFramesInOrder(t *testing.T) {
	t.Parallel()
	eg, err := builder.BuildRig(nil, builder.Chain(4))
	require.NoError(t, err)

	require.Equal(t, 4, eg.NumFrames())
	require.Equal(t, 3, eg.NumEdges())

	tf, err := eg.GetTransform("frame-0", "frame-3")
	require.NoError(t, err)
	want := spatial.Vector3{X: 3}
	require.True(t, tf.Translation.ApproxEqual(want, 1e-9))
}

func TestChain_TooFewFrames(t *testing.T) {
	t.Parallel()
	_, err := builder.BuildRig(nil, builder.Chain(1))
	require.ErrorIs(t, err, builder.ErrTooFewFrames)
}

func TestChain_WithStepScalesTranslation(t *testing.T) {
	t.Parallel()
	eg, err := builder.BuildRig([]builder.BuilderOption{builder.WithStep(2.5)}, builder.Chain(3))
	require.NoError(t, err)

	tf, err := eg.GetTransform("frame-0", "frame-1")
	require.NoError(t, err)
	require.True(t, tf.Translation.ApproxEqual(spatial.Vector3{X: 2.5}, 1e-9))
}

func TestRig_BaseConnectsToEveryLeaf(t *testing.T) {
	t.Parallel()
	eg, err := builder.BuildRig(nil, builder.Rig(3))
	require.NoError(t, err)

	require.Equal(t, 4, eg.NumFrames())
	require.Equal(t, 3, eg.NumEdges())

	for i := 1; i <= 3; i++ {
		tf, err := eg.GetTransform("frame-0", spatial.FrameId("frame-"+itoa(i)))
		require.NoError(t, err)
		require.InDelta(t, 1.0, tf.Translation.Norm(), 1e-9)
	}
}

func TestRig_TooFewLeaves(t *testing.T) {
	t.Parallel()
	_, err := builder.BuildRig(nil, builder.Rig(0))
	require.ErrorIs(t, err, builder.ErrTooFewFrames)
}

func TestRig_LeafToLeafTransitiveViaBase(t *testing.T) {
	t.Parallel()
	eg, err := builder.BuildRig(nil, builder.Rig(4))
	require.NoError(t, err)

	tf, err := eg.GetTransform("frame-1", "frame-3")
	require.NoError(t, err)
	require.True(t, tf.IsValid())
}

func TestWithFrameIDScheme_Overrides(t *testing.T) {
	t.Parallel()
	named := func(i int) spatial.FrameId {
		return spatial.FrameId("link_" + itoa(i))
	}
	eg, err := builder.BuildRig([]builder.BuilderOption{builder.WithFrameIDScheme(named)}, builder.Chain(2))
	require.NoError(t, err)

	require.True(t, eg.HasFrame("link_0"))
	require.True(t, eg.HasFrame("link_1"))
	require.False(t, eg.HasFrame("frame-0"))
}

func TestWithFrameIDScheme_NilIsNoOp(t *testing.T) {
	t.Parallel()
	eg, err := builder.BuildRig([]builder.BuilderOption{builder.WithFrameIDScheme(nil)}, builder.Chain(2))
	require.NoError(t, err)
	require.True(t, eg.HasFrame("frame-0"))
}

func TestBuildRig_NoConstructorsIsEmptyGraph(t *testing.T) {
	t.Parallel()
	eg, err := builder.BuildRig(nil)
	require.NoError(t, err)
	require.Equal(t, 0, eg.NumFrames())
	require.Equal(t, 0, eg.NumEdges())
}

func TestBuildRig_PropagatesConstructorError(t *testing.T) {
	t.Parallel()
	_, err := builder.BuildRig(nil, builder.Chain(4), builder.Rig(0))
	require.ErrorIs(t, err, builder.ErrTooFewFrames)
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
