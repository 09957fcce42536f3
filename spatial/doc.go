// Package spatial provides the value types that describe where a frame sits
// in space: a 3-vector translation, a unit quaternion orientation, a 6x6
// covariance, and the rigid-body Transform that composes them.
//
// Transform composition and inversion propagate covariance by the standard
// first-order rule: composing a with b linearizes around a's rotation,
// folding b's covariance through a's rotation Jacobian and adding a's own
// covariance. None of this needs a general-purpose matrix library — Covariance6
// is a fixed 6x6 specialization of the row-major Dense layout used
// elsewhere in this codebase's lineage, without the dynamic-dimension
// bookkeeping a general Matrix type would need.
//
// Equality and round-trip checks use a tolerance of 1e-9 on both
// translation and quaternion components (after renormalization), matching
// the numeric tolerance spec'd for the engine built on top of this package.
package spatial
