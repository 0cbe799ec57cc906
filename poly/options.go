// SPDX-License-Identifier: MIT

// Package poly: functional options for identity simplification.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// simplification runs; options never panic.
package poly

import "fmt"

// Option configures SimplifyByIdentity via functional arguments.
type Option func(*SimplifyOptions)

// SimplifyOptions holds the parameters and hooks of one simplification run.
type SimplifyOptions struct {
	// MaxDepth, if > 0, bounds the rewriting passes: the top level is depth
	// 0 and recursion into reduced sub-polynomials stops before depth
	// MaxDepth (so 1 means top level only). 0 means no limit.
	MaxDepth int

	// OnRewrite is called for every rewritten term, with the recursion depth
	// at which the pattern was found (0 for the top level).
	OnRewrite func(depth int, rewritten fmt.Stringer)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns SimplifyOptions with no depth limit and a no-op hook.
func DefaultOptions() SimplifyOptions {
	return SimplifyOptions{
		MaxDepth:  0,
		OnRewrite: func(int, fmt.Stringer) {},
	}
}

// WithMaxDepth bounds the recursion depth. Negative values are rejected.
func WithMaxDepth(n int) Option {
	return func(o *SimplifyOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxDepth must be >= 0, got %d", ErrOptionViolation, n)
			return
		}
		o.MaxDepth = n
	}
}

// WithOnRewrite installs a hook observing every rewritten term. nil is ignored.
func WithOnRewrite(fn func(depth int, rewritten fmt.Stringer)) Option {
	return func(o *SimplifyOptions) {
		if fn != nil {
			o.OnRewrite = fn
		}
	}
}

// gatherOptions applies opts over the defaults and reports the first violation.
func gatherOptions(opts ...Option) (SimplifyOptions, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
		if o.err != nil {
			return o, o.err
		}
	}
	return o, nil
}
