// Package envgraph is a spatial frame graph: a directed graph of named
// coordinate frames connected by rigid-body transforms, with arbitrary
// typed items attached to frames and structural changes announced over a
// reentrant-safe event bus.
//
// Under the hood, everything is organized under a handful of subpackages:
//
//	spatial/  — Vector3, Quaternion, Covariance6, Transform: the 6-DoF pose
//	            algebra every edge is built from
//	core/     — the generic Graph[FP, EP], its frame/edge lifecycle, BFS
//	            transitive transform composition, and spanning-tree views
//	envgraph/ — EnvireGraph, the concrete item-aware graph built on core,
//	            wired to the event bus
//	events/   — Publisher, Dispatcher, TypedItemDispatcher and Queue: the
//	            pub/sub layer that reports frame, edge and item changes
//	builder/  — functional-option topology constructors (Chain, Rig) for
//	            assembling common frame-rig shapes in one call
//	interop/  — external-collaborator contracts (Serializer, ClassLoader)
//	            plus a concrete GraphViz exporter
//
// Quick ASCII example, a three-link chain with one sensor hanging off the
// last link:
//
//	link_0 -- link_1 -- link_2
//	                        |
//	                     sensor_0
//
// go get github.com/katalvlaran/envgraph
package envgraph
