package builder

import "errors"

// ErrTooFewFrames indicates a topology constructor was asked to build
// fewer frames than its shape requires.
var ErrTooFewFrames = errors.New("builder: too few frames")
