// File: sink.go
// Role: graphSink, the core.EventSink[*core.Frame,*core.Edge] adapter
// that turns Graph's structural callbacks into events.Event values and
// forwards them to EnvireGraph's Publisher. This is the one place
// core's generic skeleton and the concrete events package meet; core
// itself never imports events.

package envgraph

import (
	"time"

	"github.com/katalvlaran/envgraph/core"
	"github.com/katalvlaran/envgraph/events"
	"github.com/katalvlaran/envgraph/spatial"
)

type graphSink struct {
	publisher *events.Publisher
}

func (s *graphSink) FrameAdded(id spatial.FrameId, _ *core.Frame) {
	s.publisher.Notify(events.Event{Kind: events.FrameAdded, Frame: id, Time: time.Now()})
}

func (s *graphSink) FrameRemoved(id spatial.FrameId) {
	s.publisher.Notify(events.Event{Kind: events.FrameRemoved, Frame: id, Time: time.Now()})
}

func (s *graphSink) EdgeAdded(origin, target spatial.FrameId, _ *core.Edge) {
	s.publisher.Notify(events.Event{Kind: events.EdgeAdded, Origin: origin, Target: target, Time: time.Now()})
}

func (s *graphSink) EdgeModified(origin, target spatial.FrameId, _, _ *core.Edge) {
	s.publisher.Notify(events.Event{Kind: events.EdgeModified, Origin: origin, Target: target, Time: time.Now()})
}

func (s *graphSink) EdgeRemoved(origin, target spatial.FrameId) {
	s.publisher.Notify(events.Event{Kind: events.EdgeRemoved, Origin: origin, Target: target, Time: time.Now()})
}
