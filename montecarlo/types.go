package montecarlo

import "github.com/katalvlaran/percolate/lattice"

// MaxGridsRendered caps how many grids of a batch are handed to a Renderer.
const MaxGridsRendered = 16

// DefaultSweepPoints is the number of sweep samples used by the CLI.
const DefaultSweepPoints = 100

// Estimate aggregates one batch of runs.
type Estimate struct {
	Runs        int
	Percolated  int
	Probability float64 // Percolated / Runs
	StdErr      float64 // standard error of Probability; 0 for a single run
}

// SweepPoint is one sample of a probability-vs-parameter curve.
type SweepPoint struct {
	Value       float64
	Probability float64
}

// Frame is one rendered run.
type Frame struct {
	Run        int
	Grid       *lattice.Grid
	Percolates bool
}

// Renderer displays frames from a batch. Implementations must not retain
// the slice beyond the call.
type Renderer interface {
	Render(frames []Frame) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(frames []Frame) error

// Render calls f(frames).
func (f RendererFunc) Render(frames []Frame) error {
	return f(frames)
}
