package spatial

import "math"

// Quaternion is a unit quaternion (W + Xi + Yj + Zk) representing a 3D
// orientation. The zero value is NOT a valid orientation; use
// IdentityQuaternion for the identity rotation.
type Quaternion struct {
	W, X, Y, Z float64
}

// IdentityQuaternion returns the no-rotation orientation.
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// Norm returns the Euclidean length of q's four components.
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Normalize returns q scaled to unit length. A near-zero quaternion
// normalizes to the identity rather than dividing by ~0.
func (q Quaternion) Normalize() Quaternion {
	n := q.Norm()
	if n < 1e-15 {
		return IdentityQuaternion()
	}
	return Quaternion{q.W / n, q.X / n, q.Y / n, q.Z / n}
}

// Conjugate returns q's conjugate, which is also its inverse when q is unit
// length.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{q.W, -q.X, -q.Y, -q.Z}
}

// Mul returns the Hamilton product q*o: applying o first, then q, to a
// vector (i.e. (q*o).Rotate(v) == q.Rotate(o.Rotate(v))).
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
	}
}

// Rotate applies q's rotation to v.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	qv := Quaternion{0, v.X, v.Y, v.Z}
	r := q.Mul(qv).Mul(q.Conjugate())
	return Vector3{r.X, r.Y, r.Z}
}

// RotationMatrix returns the 3x3 rotation matrix equivalent to q, as a
// row-major [9]float64: index i*3+j is row i, column j. Used as the
// linearization point for covariance propagation.
func (q Quaternion) RotationMatrix() [9]float64 {
	n := q.Normalize()
	w, x, y, z := n.W, n.X, n.Y, n.Z
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return [9]float64{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}

// ApproxEqual reports whether q and o represent the same orientation within
// tol, accounting for the double-cover of SO(3) by unit quaternions (q and
// -q rotate identically).
func (q Quaternion) ApproxEqual(o Quaternion, tol float64) bool {
	a := q.Normalize()
	b := o.Normalize()
	same := math.Abs(a.W-b.W) <= tol && math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
	if same {
		return true
	}
	neg := Quaternion{-b.W, -b.X, -b.Y, -b.Z}
	return math.Abs(a.W-neg.W) <= tol && math.Abs(a.X-neg.X) <= tol &&
		math.Abs(a.Y-neg.Y) <= tol && math.Abs(a.Z-neg.Z) <= tol
}
