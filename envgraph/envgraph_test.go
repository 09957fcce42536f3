package envgraph_test

import (
	"testing"

	"github.com/katalvlaran/envgraph/core"
	"github.com/katalvlaran/envgraph/envgraph"
	"github.com/katalvlaran/envgraph/events"
	"github.com/katalvlaran/envgraph/spatial"
	"github.com/stretchr/testify/require"
)

type Pose struct {
	Label string
}

func unitTranslation(x float64) spatial.Transform {
	return spatial.NewTransform(spatial.Vector3{X: x}, spatial.IdentityQuaternion(), spatial.ZeroCovariance6())
}

func TestAddTransform_CreatesBothFramesLazily(t *testing.T) {
	t.Parallel()
	eg := envgraph.New()

	require.NoError(t, eg.AddTransform("a", "b", unitTranslation(1)))
	require.True(t, eg.HasFrame("a"))
	require.True(t, eg.HasFrame("b"))
	require.Equal(t, 2, eg.NumFrames())
	require.Equal(t, 1, eg.NumEdges())
}

func TestItems_AddGetRemove(t *testing.T) {
	t.Parallel()
	eg := envgraph.New()
	require.NoError(t, eg.AddFrame("world"))

	item := core.NewItem(Pose{Label: "origin"})
	require.NoError(t, envgraph.AddItemToFrame(eg, "world", item))

	got, err := envgraph.GetItems[Pose](eg, "world")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "origin", got[0].Data().Label)

	count, err := envgraph.GetItemCount[Pose](eg, "world")
	require.NoError(t, err)
	require.Equal(t, 1, count)

	has, err := envgraph.ContainsItems[Pose](eg, "world")
	require.NoError(t, err)
	require.True(t, has)

	removed, err := envgraph.RemoveItemFromFrame[Pose](eg, "world", item.ID())
	require.NoError(t, err)
	require.Equal(t, item.ID(), removed.ID())

	count, err = envgraph.GetItemCount[Pose](eg, "world")
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestItems_DoubleAttachRejected(t *testing.T) {
	t.Parallel()
	eg := envgraph.New()
	require.NoError(t, eg.AddFrame("a"))
	require.NoError(t, eg.AddFrame("b"))

	item := core.NewItem(Pose{Label: "x"})
	require.NoError(t, envgraph.AddItemToFrame(eg, "a", item))
	require.ErrorIs(t, envgraph.AddItemToFrame(eg, "b", item), core.ErrFrameAlreadySet)
}

func TestSubscribe_ReceivesStructuralEvents(t *testing.T) {
	t.Parallel()
	eg := envgraph.New()
	d := events.NewDispatcher()

	var kinds []events.Kind
	d.OnFrameAdded(func(e events.Event) { kinds = append(kinds, e.Kind) })
	d.OnEdgeAdded(func(e events.Event) { kinds = append(kinds, e.Kind) })
	d.OnItemAdded(func(e events.Event) { kinds = append(kinds, e.Kind) })
	eg.Subscribe(d, false)

	require.NoError(t, eg.AddFrame("a"))
	require.NoError(t, eg.AddFrame("b"))
	require.NoError(t, eg.AddTransform("a", "b", unitTranslation(1)))
	require.NoError(t, envgraph.AddItemToFrame(eg, "a", core.NewItem(Pose{Label: "x"})))

	require.Equal(t, []events.Kind{
		events.FrameAdded, events.FrameAdded, events.EdgeAdded, events.ItemAddedToFrame,
	}, kinds)
}

func TestClearFrame_PublishesOneRemovalPerItem(t *testing.T) {
	t.Parallel()
	eg := envgraph.New()
	require.NoError(t, eg.AddFrame("a"))
	require.NoError(t, envgraph.AddItemToFrame(eg, "a", core.NewItem(Pose{Label: "1"})))
	require.NoError(t, envgraph.AddItemToFrame(eg, "a", core.NewItem(Pose{Label: "2"})))

	removed := 0
	d := events.NewDispatcher()
	d.OnItemRemoved(func(events.Event) { removed++ })
	eg.Subscribe(d, false)

	require.NoError(t, eg.ClearFrame("a"))
	require.Equal(t, 2, removed)

	total, err := eg.GetTotalItemCount("a")
	require.NoError(t, err)
	require.Equal(t, 0, total)
}

func TestCopy_FiltersFramesAndItems(t *testing.T) {
	t.Parallel()
	eg := envgraph.New()
	require.NoError(t, eg.AddTransform("a", "b", unitTranslation(1)))
	require.NoError(t, eg.AddTransform("b", "c", unitTranslation(1)))
	require.NoError(t, envgraph.AddItemToFrame(eg, "a", core.NewItem(Pose{Label: "keep"})))

	clone := eg.Copy(envgraph.CopyFilter{
		KeepFrame: func(id spatial.FrameId) bool { return id != "c" },
	})

	require.True(t, clone.HasFrame("a"))
	require.True(t, clone.HasFrame("b"))
	require.False(t, clone.HasFrame("c"))
	require.Equal(t, 1, clone.NumEdges())

	items, err := envgraph.GetItems[Pose](clone, "a")
	require.NoError(t, err)
	require.Len(t, items, 1)

	// mutating the clone must not affect the source.
	require.NoError(t, clone.RemoveTransform("a", "b"))
	require.Equal(t, 2, eg.NumEdges())
}

func TestGetTransform_TransitiveAcrossThreeFrames(t *testing.T) {
	t.Parallel()
	eg := envgraph.New()
	require.NoError(t, eg.AddTransform("a", "b", unitTranslation(1)))
	require.NoError(t, eg.AddTransform("b", "c", unitTranslation(2)))

	tf, err := eg.GetTransform("a", "c")
	require.NoError(t, err)
	require.True(t, tf.Translation.ApproxEqual(spatial.Vector3{X: 3}, 1e-9))
}

func TestSubscribe_PublishCurrentStateReplaysExistingStructure(t *testing.T) {
	t.Parallel()
	eg := envgraph.New()
	require.NoError(t, eg.AddTransform("a", "b", unitTranslation(1)))
	require.NoError(t, envgraph.AddItemToFrame(eg, "a", core.NewItem(Pose{Label: "x"})))

	d := events.NewDispatcher()
	var kinds []events.Kind
	d.OnFrameAdded(func(e events.Event) { kinds = append(kinds, e.Kind) })
	d.OnEdgeAdded(func(e events.Event) { kinds = append(kinds, e.Kind) })
	d.OnItemAdded(func(e events.Event) { kinds = append(kinds, e.Kind) })

	eg.Subscribe(d, true)

	require.Equal(t, []events.Kind{
		events.FrameAdded, events.FrameAdded, events.EdgeAdded, events.ItemAddedToFrame,
	}, kinds, "replay must deliver frames, then edges, then items")

	// a subscriber replayed in also receives events for mutations made
	// after it joined.
	require.NoError(t, eg.AddFrame("c"))
	require.Equal(t, []events.Kind{
		events.FrameAdded, events.FrameAdded, events.EdgeAdded, events.ItemAddedToFrame, events.FrameAdded,
	}, kinds)
}

func TestSubscribe_WithoutPublishCurrentStateSeesNoReplay(t *testing.T) {
	t.Parallel()
	eg := envgraph.New()
	require.NoError(t, eg.AddFrame("a"))

	d := events.NewDispatcher()
	var count int
	d.OnFrameAdded(func(events.Event) { count++ })
	eg.Subscribe(d, false)

	require.Equal(t, 0, count)
}

func TestUnsubscribe_UnpublishCurrentStateReplaysTeardown(t *testing.T) {
	t.Parallel()
	eg := envgraph.New()
	require.NoError(t, eg.AddTransform("a", "b", unitTranslation(1)))
	require.NoError(t, envgraph.AddItemToFrame(eg, "a", core.NewItem(Pose{Label: "x"})))

	d := events.NewDispatcher()
	var kinds []events.Kind
	d.OnItemRemoved(func(e events.Event) { kinds = append(kinds, e.Kind) })
	d.OnEdgeRemoved(func(e events.Event) { kinds = append(kinds, e.Kind) })
	d.OnFrameRemoved(func(e events.Event) { kinds = append(kinds, e.Kind) })
	eg.Subscribe(d, false)

	eg.Unsubscribe(d, true)

	require.Equal(t, []events.Kind{
		events.ItemRemovedFromFrame, events.EdgeRemoved, events.FrameRemoved, events.FrameRemoved,
	}, kinds, "unpublish must deliver items, then edges, then frames")

	// having been unsubscribed, d must not see events after this point.
	require.NoError(t, eg.AddFrame("fresh"))
	require.Len(t, kinds, 4)
}

func TestClose_DetachesAllSubscribers(t *testing.T) {
	t.Parallel()
	eg := envgraph.New()
	d := events.NewDispatcher()
	var count int
	d.OnFrameAdded(func(events.Event) { count++ })
	eg.Subscribe(d, false)

	eg.Close()
	require.NoError(t, eg.AddFrame("a"))
	require.Equal(t, 0, count)
}
