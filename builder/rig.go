// File: rig.go
// Role: Rig(n), a base frame with n leaf frames radiating from it, each
// one hop away, like the hub of a star. Leaves are placed evenly
// around it in the XY plane at radius cfg.step so no two leaves share a
// translation (useful for telling them apart in a rendered view).

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/envgraph/envgraph"
	"github.com/katalvlaran/envgraph/spatial"
)

const minRigLeaves = 1

// Rig returns a Constructor that builds one base frame (index 0) plus n
// leaf frames (indices 1..n), each connected directly to the base.
func Rig(n int) Constructor {
	return func(eg *envgraph.EnvireGraph, cfg *builderConfig) error {
		if n < minRigLeaves {
			return fmt.Errorf("Rig: n=%d < min=%d: %w", n, minRigLeaves, ErrTooFewFrames)
		}

		base := cfg.idFn(0)
		if err := eg.AddFrame(base); err != nil {
			return fmt.Errorf("Rig: AddFrame(base): %w", err)
		}

		for i := 1; i <= n; i++ {
			leaf := cfg.idFn(i)
			if err := eg.AddFrame(leaf); err != nil {
				return fmt.Errorf("Rig: AddFrame(%d): %w", i, err)
			}

			angle := 2 * math.Pi * float64(i-1) / float64(n)
			translation := spatial.Vector3{X: cfg.step * math.Cos(angle), Y: cfg.step * math.Sin(angle)}
			tf := spatial.NewTransform(translation, spatial.IdentityQuaternion(), spatial.ZeroCovariance6())
			if err := eg.AddTransform(base, leaf, tf); err != nil {
				return fmt.Errorf("Rig: AddTransform(base,%d): %w", i, err)
			}
		}
		return nil
	}
}
