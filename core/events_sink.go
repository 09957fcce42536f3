// File: events_sink.go
// Role: the narrow interface Graph uses to announce structural mutations,
// decoupling core from the events package entirely (no import cycle: core
// never imports events; envgraph adapts an EventSink into a real
// *events.Publisher).

package core

import "github.com/katalvlaran/envgraph/spatial"

// EventSink receives structural-mutation notifications from a Graph. Every
// method is called synchronously, after the corresponding mutation has
// already succeeded, and never for a failed mutation.
type EventSink[FP FrameProperty, EP any] interface {
	FrameAdded(id spatial.FrameId, fp FP)
	FrameRemoved(id spatial.FrameId)
	EdgeAdded(origin, target spatial.FrameId, prop EP)
	EdgeModified(origin, target spatial.FrameId, prop, inverseProp EP)
	EdgeRemoved(origin, target spatial.FrameId)
}

// nopSink is the zero-effort EventSink used when a Graph is constructed
// without one (mostly useful in tests for the generic skeleton in
// isolation from the event bus).
type nopSink[FP FrameProperty, EP any] struct{}

func (nopSink[FP, EP]) FrameAdded(spatial.FrameId, FP)                {}
func (nopSink[FP, EP]) FrameRemoved(spatial.FrameId)                  {}
func (nopSink[FP, EP]) EdgeAdded(spatial.FrameId, spatial.FrameId, EP) {}
func (nopSink[FP, EP]) EdgeModified(spatial.FrameId, spatial.FrameId, EP, EP) {}
func (nopSink[FP, EP]) EdgeRemoved(spatial.FrameId, spatial.FrameId)  {}
