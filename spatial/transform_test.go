package spatial_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/envgraph/spatial"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func TestIdentity_ComposeIsNoOp(t *testing.T) {
	t.Parallel()

	tf := spatial.NewTransform(spatial.Vector3{X: 1, Y: 2, Z: 3}, spatial.IdentityQuaternion(), spatial.ZeroCovariance6())
	id := spatial.Identity()

	require.True(t, id.Compose(tf).ApproxEqual(tf, tol))
	require.True(t, tf.Compose(id).ApproxEqual(tf, tol))
}

func TestInvert_RoundTripIsIdentity(t *testing.T) {
	t.Parallel()

	// 90 degree rotation about Z, translation (1,0,0).
	half := math.Pi / 4
	rot := spatial.Quaternion{W: math.Cos(half), Z: math.Sin(half)}
	tf := spatial.NewTransform(spatial.Vector3{X: 1}, rot, spatial.ZeroCovariance6())

	roundTrip := tf.Compose(tf.Invert())
	require.True(t, roundTrip.ApproxEqual(spatial.Identity(), tol))

	roundTrip2 := tf.Invert().Compose(tf)
	require.True(t, roundTrip2.ApproxEqual(spatial.Identity(), tol))
}

func TestCompose_Translations(t *testing.T) {
	t.Parallel()

	ab := spatial.NewTransform(spatial.Vector3{X: 1}, spatial.IdentityQuaternion(), spatial.ZeroCovariance6())
	bc := spatial.NewTransform(spatial.Vector3{Y: 1}, spatial.IdentityQuaternion(), spatial.ZeroCovariance6())

	ac := ab.Compose(bc)
	want := spatial.Vector3{X: 1, Y: 1}
	require.True(t, ac.Translation.ApproxEqual(want, tol), "got %+v", ac.Translation)
}

func TestInvalidTransform_ComposeAndInvertStayInvalid(t *testing.T) {
	t.Parallel()

	inv := spatial.Invalid()
	require.False(t, inv.IsValid())
	require.False(t, inv.Invert().IsValid())

	valid := spatial.Identity()
	require.False(t, inv.Compose(valid).IsValid())
	require.False(t, valid.Compose(inv).IsValid())
}

func TestQuaternion_DoubleCoverApproxEqual(t *testing.T) {
	t.Parallel()

	q := spatial.Quaternion{W: 0.7071067811865476, X: 0.7071067811865476}
	neg := spatial.Quaternion{W: -q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
	require.True(t, q.ApproxEqual(neg, tol))
}

func TestCovariance6_MulIdentityIsNoOp(t *testing.T) {
	t.Parallel()

	var id spatial.Covariance6
	for i := 0; i < 6; i++ {
		var err error
		id, err = id.Set(i, i, 1)
		require.NoError(t, err)
	}

	m, err := spatial.ZeroCovariance6().Set(0, 1, 3.5)
	require.NoError(t, err)

	require.True(t, id.Mul(m).ApproxEqual(m, tol))
	require.True(t, m.Mul(id).ApproxEqual(m, tol))
}

func TestCovariance6_AtOutOfBounds(t *testing.T) {
	t.Parallel()

	_, err := spatial.ZeroCovariance6().At(6, 0)
	require.ErrorIs(t, err, spatial.ErrIndexOutOfBounds)

	_, err = spatial.ZeroCovariance6().At(0, -1)
	require.ErrorIs(t, err, spatial.ErrIndexOutOfBounds)
}
