// Package envgraph provides EnvireGraph, the item-aware specialization
// of core.Graph[*core.Frame, *core.Edge]: every mutation that adds,
// changes, or removes a frame, edge, or item is announced on an
// internal *events.Publisher, so any number of subscribers (a
// events.Dispatcher, a typed events.TypedItemDispatcher, a buffering
// events.Queue, or a custom events.Subscriber) can react without
// EnvireGraph knowing anything about what they do with the
// notification.
//
// EnvireGraph itself carries no mutex, same as core.Graph: callers
// synchronize externally.
package envgraph
