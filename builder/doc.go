// Package builder provides deterministic topology constructors for
// envgraph.EnvireGraph: a Constructor function type, a
// functional-option-resolved config (frame-id scheme, translation
// step), and a single BuildRig entry point that applies any number of
// constructors in order.
//
// The topologies here are native to rigid-body kinematic structures: a serial Chain of
// frames and a Rig of frames radiating from one base frame, each
// one hop away (a sensor rig mounted on a common mount point is the
// motivating case).
package builder
