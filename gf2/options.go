// SPDX-License-Identifier: MIT

package gf2

// DefaultMaxFreeVars caps the free-variable count MinWeight and Enumerate will
// enumerate (2^30 ≈ 1e9 back-substitutions). Puzzle inputs stay far below it.
const DefaultMaxFreeVars = 30

// MaxFreeVarsLimit is the hard ceiling: assignments are iterated as a uint64
// mask and 2^k must not overflow.
const MaxFreeVarsLimit = 62

const panicMaxFreeVarsInvalid = "gf2: WithMaxFreeVars: k must be in [0, MaxFreeVarsLimit]"

// Option mutates search options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options is the effective search configuration after applying Option setters.
type Options struct {
	maxFreeVars int
}

// MaxFreeVars returns the configured free-variable cap.
func (o Options) MaxFreeVars() int { return o.maxFreeVars }

// WithMaxFreeVars sets the largest free-variable count a search will accept.
// Systems with more free variables fail with ErrSearchTooLarge instead of
// running for 2^k steps. Panics if k < 0 or k > MaxFreeVarsLimit.
func WithMaxFreeVars(k int) Option {
	if k < 0 || k > MaxFreeVarsLimit {
		panic(panicMaxFreeVarsInvalid)
	}

	return func(o *Options) { o.maxFreeVars = k }
}

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies setters in order (last writer wins) on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		maxFreeVars: DefaultMaxFreeVars,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
