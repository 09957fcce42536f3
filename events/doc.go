// Package events implements the graph's publish/subscribe notification
// bus: a Publisher that announces structural mutations (frames, edges,
// items) to any number of Subscriber implementations, a Dispatcher that
// turns those notifications into per-kind callbacks, a generic
// TypedItemDispatcher that filters item events by payload type, and a
// Queue that buffers and coalesces events for a puller that drains them
// on its own schedule.
//
// Reentrancy: Publisher tolerates a subscriber that subscribes or
// unsubscribes from inside its own notification callback. Changes made
// during a Notify call are buffered and applied once that call returns,
// so the slice being ranged over is never mutated mid-iteration.
package events
