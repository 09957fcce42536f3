// File: config.go
// Role: builderConfig{idFn,step} and the functional BuilderOption type
// that resolves it.

package builder

import (
	"strconv"

	"github.com/katalvlaran/envgraph/spatial"
)

// FrameIDFn maps a zero-based topology index to a frame id.
type FrameIDFn func(index int) spatial.FrameId

// DefaultFrameIDFn produces ids of the form "frame-<index>".
func DefaultFrameIDFn(index int) spatial.FrameId {
	return spatial.FrameId("frame-" + strconv.Itoa(index))
}

// BuilderOption customizes a builderConfig before a Constructor runs.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the parameters shared by every Constructor in
// this package: how to name frames, and how far apart to place them
// along whichever axis the constructor uses.
type builderConfig struct {
	idFn FrameIDFn
	step float64 // translation magnitude, in metres, along the constructor's axis
}

func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{idFn: DefaultFrameIDFn, step: 1.0}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithFrameIDScheme injects a custom FrameIDFn. A nil fn is a no-op.
func WithFrameIDScheme(fn FrameIDFn) BuilderOption {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.idFn = fn
		}
	}
}

// WithStep sets the translation magnitude between consecutive (Chain)
// or base-to-leaf (Rig) frames. Non-positive values are ignored.
func WithStep(step float64) BuilderOption {
	return func(cfg *builderConfig) {
		if step > 0 {
			cfg.step = step
		}
	}
}
