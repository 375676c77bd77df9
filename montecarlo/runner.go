package montecarlo

import (
	"fmt"
	"log"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/percolate/lattice"
	"github.com/katalvlaran/percolate/percolation"
)

// Runner executes Monte Carlo batches.
type Runner struct {
	renderer    Renderer
	maxRendered int
	logger      *log.Logger
}

// NewRunner returns a headless Runner unless WithRenderer is given.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{maxRendered: MaxGridsRendered}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run returns the fraction of numRuns lattices sampled from one stream
// seeded with seed that percolate.
func (r *Runner) Run(numRuns int, p lattice.Params, seed int64) (float64, error) {
	est, err := r.Estimate(numRuns, p, seed)

	return est.Probability, err
}

// Estimate is Run with the full batch statistics.
// A render failure is reported as ErrRender alongside a complete Estimate.
func (r *Runner) Estimate(numRuns int, p lattice.Params, seed int64) (Estimate, error) {
	if numRuns <= 0 {
		return Estimate{}, fmt.Errorf("%w: number of runs must be positive, got %d", ErrInvalidParameter, numRuns)
	}
	if err := p.Validate(); err != nil {
		return Estimate{}, err
	}

	est, frames, err := r.batch(numRuns, p, seed, r.renderer != nil)
	if err != nil {
		return Estimate{}, err
	}
	if r.logger != nil {
		r.logger.Printf("%dx%d vacancy=%.4f seed=%d: %d/%d percolated (p=%.4f ± %.4f)",
			p.Length, p.Height, p.VacancyPercentage, seed, est.Percolated, est.Runs, est.Probability, est.StdErr)
	}
	if r.renderer != nil && len(frames) > 0 {
		if err := r.renderer.Render(frames); err != nil {
			return est, fmt.Errorf("montecarlo: %d frames: %w: %w", len(frames), ErrRender, err)
		}
	}

	return est, nil
}

// batch runs the simulation proper on validated inputs.
func (r *Runner) batch(numRuns int, p lattice.Params, seed int64, collect bool) (Estimate, []Frame, error) {
	rng := NewRand(seed)
	outcomes := make([]float64, numRuns)
	var frames []Frame
	if collect {
		frames = make([]Frame, 0, min(numRuns, r.maxRendered))
	}

	percolated := 0
	for i := 0; i < numRuns; i++ {
		g, err := lattice.Generate(p, rng)
		if err != nil {
			return Estimate{}, nil, fmt.Errorf("montecarlo: run %d: %w", i, err)
		}
		ok, err := percolation.Evaluate(g)
		if err != nil {
			return Estimate{}, nil, fmt.Errorf("montecarlo: run %d: %w", i, err)
		}
		if ok {
			percolated++
			outcomes[i] = 1
		}
		if collect && len(frames) < r.maxRendered {
			frames = append(frames, Frame{Run: i, Grid: g, Percolates: ok})
		}
	}

	est := Estimate{
		Runs:        numRuns,
		Percolated:  percolated,
		Probability: float64(percolated) / float64(numRuns),
	}
	if numRuns > 1 {
		_, std := stat.MeanStdDev(outcomes, nil)
		est.StdErr = stat.StdErr(std, float64(numRuns))
		if math.IsNaN(est.StdErr) {
			est.StdErr = 0
		}
	}

	return est, frames, nil
}
