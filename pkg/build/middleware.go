package build

import "context"

// BuildFunc builds one top-level element.
type BuildFunc func(ctx context.Context, tag string, spec Spec) (Result, error)

// Middleware wraps a BuildFunc. The first middleware registered is the
// outermost.
type Middleware func(next BuildFunc) BuildFunc
