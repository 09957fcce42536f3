package events_test

import (
	"testing"

	"github.com/katalvlaran/envgraph/events"
	"github.com/stretchr/testify/require"
)

func TestQueue_RepeatedModifiedKeepsOnlyLatest(t *testing.T) {
	t.Parallel()
	q := events.NewQueue()
	q.NotifyGraphEvent(events.Event{Kind: events.EdgeAdded, Origin: "a", Target: "b"})
	q.NotifyGraphEvent(events.Event{Kind: events.EdgeModified, Origin: "a", Target: "b"})
	q.NotifyGraphEvent(events.Event{Kind: events.EdgeModified, Origin: "a", Target: "b"})

	// ADDED is untouched by MODIFIED coalescing (only a later REMOVED
	// supersedes it); only the repeated MODIFIED collapses.
	require.Equal(t, 2, q.Len())

	var seen []events.Kind
	q.Flush(func(e events.Event) { seen = append(seen, e.Kind) })
	require.Equal(t, []events.Kind{events.EdgeAdded, events.EdgeModified}, seen)
	require.Equal(t, 0, q.Len())
}

func TestQueue_AddedThenRemovedAnnihilates(t *testing.T) {
	t.Parallel()
	q := events.NewQueue()
	q.NotifyGraphEvent(events.Event{Kind: events.FrameAdded, Frame: "a"})
	q.NotifyGraphEvent(events.Event{Kind: events.FrameRemoved, Frame: "a"})

	require.Equal(t, 0, q.Len())

	var called bool
	q.Flush(func(events.Event) { called = true })
	require.False(t, called)
}

func TestQueue_AddedModifiedRemovedAnnihilates(t *testing.T) {
	t.Parallel()
	q := events.NewQueue()
	q.NotifyGraphEvent(events.Event{Kind: events.EdgeAdded, Origin: "a", Target: "b"})
	q.NotifyGraphEvent(events.Event{Kind: events.EdgeModified, Origin: "a", Target: "b"})
	q.NotifyGraphEvent(events.Event{Kind: events.EdgeRemoved, Origin: "a", Target: "b"})

	require.Equal(t, 0, q.Len(), "added->modified->removed fully annihilates")
}

func TestQueue_UnrelatedEventsBothSurvive(t *testing.T) {
	t.Parallel()
	q := events.NewQueue()
	q.NotifyGraphEvent(events.Event{Kind: events.FrameAdded, Frame: "a"})
	q.NotifyGraphEvent(events.Event{Kind: events.FrameAdded, Frame: "b"})

	require.Equal(t, 2, q.Len())
}
