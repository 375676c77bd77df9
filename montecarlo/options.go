package montecarlo

import "log"

// Option customizes a Runner.
// Option constructors panic on meaningless values; Runner methods never panic.
type Option func(*Runner)

// WithRenderer hands up to the configured maximum of frames from each Run
// batch to r.
func WithRenderer(r Renderer) Option {
	if r == nil {
		panic("montecarlo: WithRenderer(nil)")
	}
	return func(rn *Runner) {
		rn.renderer = r
	}
}

// WithMaxRendered overrides MaxGridsRendered.
func WithMaxRendered(n int) Option {
	if n <= 0 {
		panic("montecarlo: WithMaxRendered(n<=0)")
	}
	return func(rn *Runner) {
		rn.maxRendered = n
	}
}

// WithLogger logs one line per batch and per sweep point to l.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("montecarlo: WithLogger(nil)")
	}
	return func(rn *Runner) {
		rn.logger = l
	}
}
