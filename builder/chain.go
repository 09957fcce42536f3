// File: chain.go
// Role: Chain(n), a serial kinematic chain frame-0 -> frame-1 -> ... ->
// frame-(n-1), each link translated cfg.step along X from its parent,
// emitted in ascending index order; n below the minimum fails with
// ErrTooFewFrames.

package builder

import (
	"fmt"

	"github.com/katalvlaran/envgraph/envgraph"
	"github.com/katalvlaran/envgraph/spatial"
)

const minChainFrames = 2

// Chain returns a Constructor that builds a serial chain of n frames,
// linked in ascending index order by a translation of cfg.step along X.
func Chain(n int) Constructor {
	return func(eg *envgraph.EnvireGraph, cfg *builderConfig) error {
		if n < minChainFrames {
			return fmt.Errorf("Chain: n=%d < min=%d: %w", n, minChainFrames, ErrTooFewFrames)
		}

		for i := 0; i < n; i++ {
			if err := eg.AddFrame(cfg.idFn(i)); err != nil {
				return fmt.Errorf("Chain: AddFrame(%d): %w", i, err)
			}
		}

		tf := spatial.NewTransform(spatial.Vector3{X: cfg.step}, spatial.IdentityQuaternion(), spatial.ZeroCovariance6())
		for i := 1; i < n; i++ {
			if err := eg.AddTransform(cfg.idFn(i-1), cfg.idFn(i), tf); err != nil {
				return fmt.Errorf("Chain: AddTransform(%d,%d): %w", i-1, i, err)
			}
		}
		return nil
	}
}
