// File: api.go
// Role: Constructor, the uniform function type every topology builder
// implements, and BuildRig, the single public entry point that resolves
// a builderConfig and applies constructors in order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/envgraph/envgraph"
)

// Constructor applies a deterministic set of frames and transforms to
// eg using the resolved builderConfig.
type Constructor func(eg *envgraph.EnvireGraph, cfg *builderConfig) error

// BuildRig creates a new EnvireGraph, resolves a builderConfig from
// opts, and applies every constructor in order. The first constructor
// error is wrapped and returned immediately.
func BuildRig(opts []BuilderOption, cons ...Constructor) (*envgraph.EnvireGraph, error) {
	eg := envgraph.New()
	cfg := newBuilderConfig(opts...)

	for _, con := range cons {
		if err := con(eg, cfg); err != nil {
			return nil, fmt.Errorf("BuildRig: %w", err)
		}
	}
	return eg, nil
}
