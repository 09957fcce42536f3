// File: transform.go
// Role: the 6-DoF rigid transform (translation + quaternion + covariance)
// that labels every Edge, with composition and inversion that propagate
// covariance by the standard first-order rule.

package spatial

// Transform is a rigid-body pose: rotate by Rotation, then translate by
// Translation (a point p maps to Rotation.Rotate(p) + Translation), with Covariance describing uncertainty in that 6-DoF pose
// (translation in rows/cols 0-2, orientation in rows/cols 3-5). A Transform
// with valid==false is the sentinel used for unknown/unset edges; it
// carries no meaningful Translation/Rotation/Covariance.
type Transform struct {
	Translation Vector3
	Rotation    Quaternion
	Covariance  Covariance6
	valid       bool
}

// NewTransform constructs a valid Transform from translation, rotation and
// covariance.
func NewTransform(translation Vector3, rotation Quaternion, covariance Covariance6) Transform {
	return Transform{Translation: translation, Rotation: rotation.Normalize(), Covariance: covariance, valid: true}
}

// Identity returns the zero-translation, zero-rotation, zero-covariance
// transform.
func Identity() Transform {
	return Transform{Rotation: IdentityQuaternion(), valid: true}
}

// Invalid returns the sentinel invalid transform used for unknown edges.
func Invalid() Transform {
	return Transform{valid: false}
}

// IsValid reports whether t carries a meaningful pose.
func (t Transform) IsValid() bool {
	return t.valid
}

// Compose returns a*b: the transform that first applies t, then applies
// other, expressed in t's parent frame. Covariance of the result is
// Cov_t + R_t * Cov_other * R_t^T (other's uncertainty rotated into t's
// frame, first-order), which is exact when covariances are independent and
// approximate otherwise, per the standard first-order propagation rule.
func (t Transform) Compose(other Transform) Transform {
	if !t.valid || !other.valid {
		return Invalid()
	}
	translation := t.Translation.Add(t.Rotation.Rotate(other.Translation))
	rotation := t.Rotation.Mul(other.Rotation).Normalize()

	jacobian := blockDiagonalRotation(t.Rotation.RotationMatrix())
	rotatedOther := jacobian.Mul(other.Covariance).Mul(jacobian.Transpose())
	covariance := t.Covariance.Add(rotatedOther)

	return Transform{Translation: translation, Rotation: rotation, Covariance: covariance, valid: true}
}

// Invert returns the inverse of t: if t maps frame A's points into frame B,
// Invert returns the transform mapping frame B's points into frame A.
// Covariance propagates through the same rotation Jacobian used by
// Compose, evaluated at the inverted rotation.
func (t Transform) Invert() Transform {
	if !t.valid {
		return Invalid()
	}
	inverseRotation := t.Rotation.Conjugate().Normalize()
	inverseTranslation := inverseRotation.Rotate(t.Translation).Scale(-1)

	jacobian := blockDiagonalRotation(inverseRotation.RotationMatrix())
	covariance := jacobian.Mul(t.Covariance).Mul(jacobian.Transpose())

	return Transform{Translation: inverseTranslation, Rotation: inverseRotation, Covariance: covariance, valid: true}
}

// ApproxEqual reports whether t and o have the same validity, translation
// and rotation within tol (covariance is not compared: two transforms
// describing the same pose with differently-estimated uncertainty are
// still "the same transform" for round-trip/identity checks).
func (t Transform) ApproxEqual(o Transform, tol float64) bool {
	if t.valid != o.valid {
		return false
	}
	if !t.valid {
		return true
	}
	return t.Translation.ApproxEqual(o.Translation, tol) && t.Rotation.ApproxEqual(o.Rotation, tol)
}
