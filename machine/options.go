// SPDX-License-Identifier: MIT

package machine

import (
	"runtime"

	"github.com/katalvlaran/gf2press/gf2"
)

const panicWorkersInvalid = "machine: WithWorkers: n must be >= 1"

// Option configures SolveAll.
type Option func(*Options)

// Options is the effective batch configuration.
type Options struct {
	workers int
	search  []gf2.Option
}

// Workers returns the worker pool size.
func (o Options) Workers() int { return o.workers }

// WithWorkers bounds the number of machines solved concurrently.
// The default is runtime.GOMAXPROCS(0). Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithSearchOptions forwards gf2 options (e.g. gf2.WithMaxFreeVars) to every
// per-machine search. Repeated calls append.
func WithSearchOptions(opts ...gf2.Option) Option {
	return func(o *Options) { o.search = append(o.search, opts...) }
}

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func gatherOptions(user ...Option) Options {
	o := Options{workers: runtime.GOMAXPROCS(0)}
	for _, set := range user {
		set(&o)
	}

	return o
}
