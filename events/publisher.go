// File: publisher.go
// Role: Subscriber and Publisher, adapted directly from
// GraphEventPublisher.hpp/.cpp: a flat subscriber list, a reentrancy
// depth counter, and two pending lists that buffer subscribe/unsubscribe
// calls made from inside a notification callback until the outermost
// Notify call returns. This is the same recursion-safety property as the
// original, not thread-safety: Publisher still assumes a single
// goroutine.

package events

// Subscriber receives Event notifications from a Publisher.
type Subscriber interface {
	NotifyGraphEvent(e Event)
}

// StateReplayer synthesizes the events that describe a graph's entire
// current structure, or the inverse events that describe tearing it back
// down, for Subscribe/Unsubscribe's publishCurrentState and
// unpublishCurrentState parameters. envgraph.EnvireGraph implements it;
// core never needs to know StateReplayer exists.
type StateReplayer interface {
	// PublishCurrentState calls emit once per frame, then once per
	// edge, then once per item, bringing a fresh subscriber's view up
	// to the graph's current contents.
	PublishCurrentState(emit func(Event))

	// UnpublishCurrentState calls emit with the exact inverse of
	// PublishCurrentState: once per item, then once per edge, then
	// once per frame, each in the reverse of PublishCurrentState's
	// order.
	UnpublishCurrentState(emit func(Event))
}

// Publisher fans Event notifications out to any number of Subscribers.
type Publisher struct {
	subscribers   []Subscriber
	notifyDepth   int
	toSubscribe   []Subscriber
	toUnsubscribe []Subscriber
	replayer      StateReplayer
}

// NewPublisher constructs an empty Publisher.
func NewPublisher() *Publisher {
	return &Publisher{}
}

// SetReplayer installs r as the StateReplayer Subscribe/Unsubscribe
// consult when their publishCurrentState/unpublishCurrentState argument
// is true. A Publisher with no replayer installed ignores that argument.
func (p *Publisher) SetReplayer(r StateReplayer) {
	p.replayer = r
}

// Subscribe registers s to receive future notifications. If
// publishCurrentState is true and a StateReplayer is installed, s first
// receives the synthetic replay of the graph's entire current state,
// before anything else can reach it -- so it never misses an event for
// an entity that already existed, and never sees one twice. If called
// from inside Notify, s's registration (not the replay, which is
// synchronous regardless) takes effect only once the outermost Notify
// call returns.
func (p *Publisher) Subscribe(s Subscriber, publishCurrentState bool) {
	if publishCurrentState && p.replayer != nil {
		p.replayer.PublishCurrentState(s.NotifyGraphEvent)
	}
	if p.notifyDepth > 0 {
		p.toSubscribe = append(p.toSubscribe, s)
		return
	}
	p.subscribers = append(p.subscribers, s)
}

// Unsubscribe removes s. If unpublishCurrentState is true and a
// StateReplayer is installed, s first receives the inverse replay,
// describing the graph's contents being torn down, before it stops
// receiving anything. If called from inside Notify, the removal itself
// takes effect only once the outermost Notify call returns.
func (p *Publisher) Unsubscribe(s Subscriber, unpublishCurrentState bool) {
	if unpublishCurrentState && p.replayer != nil {
		p.replayer.UnpublishCurrentState(s.NotifyGraphEvent)
	}
	if p.notifyDepth > 0 {
		p.toUnsubscribe = append(p.toUnsubscribe, s)
		return
	}
	p.unsubscribeInternal(s)
}

// Close detaches every remaining subscriber and drops any pending
// subscribe/unsubscribe still buffered from an in-progress Notify. Go has
// no destructors, so a caller that owns a Publisher it is about to
// discard -- typically via EnvireGraph.Close -- calls this explicitly;
// it is the direct counterpart of GraphEventPublisher's destructor, which
// detached each subscriber as the publisher itself was torn down.
func (p *Publisher) Close() {
	p.subscribers = nil
	p.toSubscribe = nil
	p.toUnsubscribe = nil
}

// Notify delivers e to every current subscriber, in subscription order.
//
// A subscriber's callback is allowed to mutate the graph it is watching,
// which recurses into Notify before this call has finished iterating
// p.subscribers. notifyDepth counts the nesting: only the outermost call
// (the one that takes depth from 0 to 1 and back down to 0) flushes the
// pending subscribe/unsubscribe lists, so a nested call can never clear
// the guard out from under the call it is nested inside. The subscriber
// list a nested call iterates is therefore always the pre-recursion
// snapshot -- any Subscribe/Unsubscribe made during the recursion is
// deferred exactly once, not applied twice or lost.
func (p *Publisher) Notify(e Event) {
	p.notifyDepth++
	for _, s := range p.subscribers {
		s.NotifyGraphEvent(e)
	}
	p.notifyDepth--
	if p.notifyDepth > 0 {
		return
	}

	for _, s := range p.toSubscribe {
		p.subscribers = append(p.subscribers, s)
	}
	p.toSubscribe = p.toSubscribe[:0]

	for _, s := range p.toUnsubscribe {
		p.unsubscribeInternal(s)
	}
	p.toUnsubscribe = p.toUnsubscribe[:0]
}

func (p *Publisher) unsubscribeInternal(s Subscriber) {
	for i, sub := range p.subscribers {
		if sub == s {
			p.subscribers = append(p.subscribers[:i], p.subscribers[i+1:]...)
			return
		}
	}
}
