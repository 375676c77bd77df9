package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/percolate/lattice"
	"github.com/katalvlaran/percolate/montecarlo"
)

// errUsage marks command-line errors; main exits with status 2 for them.
var errUsage = errors.New("usage error")

type config struct {
	numRuns  int
	params   lattice.Params
	seed     int64
	draw     bool
	drawOut  string
	plotRuns bool
	variable montecarlo.Variable
	bounds   montecarlo.Bounds
	points   int
	plotOut  string
	htmlOut  string
	verbose  bool
}

// parseFlags parses and validates args. Nothing is simulated here.
func parseFlags(args []string, stderr io.Writer) (config, error) {
	var (
		cfg      config
		variable string
		bounds   string
	)
	fs := flag.NewFlagSet("percolate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.IntVar(&cfg.numRuns, "num-runs", 10, "number of lattices sampled per estimate")
	fs.IntVar(&cfg.numRuns, "n", 10, "shorthand for -num-runs")
	fs.IntVar(&cfg.params.Height, "height", 0, "lattice rows (required)")
	fs.IntVar(&cfg.params.Height, "y", 0, "shorthand for -height")
	fs.IntVar(&cfg.params.Length, "length", 0, "lattice columns (required)")
	fs.IntVar(&cfg.params.Length, "x", 0, "shorthand for -length")
	fs.Int64Var(&cfg.seed, "seed", 0, "random seed (required)")
	fs.Int64Var(&cfg.seed, "s", 0, "shorthand for -seed")
	fs.Float64Var(&cfg.params.VacancyPercentage, "vacancy-percentage", 0, "probability in [0,1] that a cell is vacant")
	fs.Float64Var(&cfg.params.VacancyPercentage, "v", 0, "shorthand for -vacancy-percentage")
	fs.BoolVar(&cfg.draw, "draw", false, "render up to 16 lattices of the batch")
	fs.BoolVar(&cfg.draw, "d", false, "shorthand for -draw")
	fs.StringVar(&cfg.drawOut, "draw-out", "grids.png", "image written by -draw")
	fs.BoolVar(&cfg.plotRuns, "plot-runs", false, "sweep -variable over -bounds instead of a single estimate")
	fs.StringVar(&variable, "variable", "", "sweep variable: length, height or vacancy_percentage")
	fs.StringVar(&bounds, "bounds", "", `sweep range as "LOW,HIGH"`)
	fs.IntVar(&cfg.points, "points", montecarlo.DefaultSweepPoints, "number of sweep points")
	fs.StringVar(&cfg.plotOut, "plot-out", "sweep.png", "image written by -plot-runs")
	fs.StringVar(&cfg.htmlOut, "html", "", "also write the sweep as an HTML chart to this path")
	fs.BoolVar(&cfg.verbose, "verbose", false, "log each batch and sweep point to stderr")

	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("%w: unexpected arguments %q", errUsage, fs.Args())
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	given := func(long, short string) bool { return set[long] || set[short] }

	for _, req := range [][2]string{{"length", "x"}, {"height", "y"}, {"seed", "s"}} {
		if !given(req[0], req[1]) {
			return cfg, fmt.Errorf("%w: -%s is required", errUsage, req[0])
		}
	}
	if cfg.numRuns <= 0 {
		return cfg, fmt.Errorf("%w: %w: -num-runs must be positive, got %d", errUsage, lattice.ErrInvalidParameter, cfg.numRuns)
	}

	if !cfg.plotRuns {
		if !given("vacancy-percentage", "v") {
			return cfg, fmt.Errorf("%w: -vacancy-percentage is required", errUsage)
		}
		if err := cfg.params.Validate(); err != nil {
			return cfg, fmt.Errorf("%w: %w", errUsage, err)
		}
		return cfg, nil
	}

	if cfg.draw {
		return cfg, fmt.Errorf("%w: -draw renders single estimates only and cannot be combined with -plot-runs", errUsage)
	}
	if variable == "" || bounds == "" {
		return cfg, fmt.Errorf("%w: -plot-runs needs -variable and -bounds", errUsage)
	}
	v, err := montecarlo.ParseVariable(variable)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", errUsage, err)
	}
	b, err := montecarlo.ParseBounds(bounds)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", errUsage, err)
	}
	if v != montecarlo.VariableVacancy && !given("vacancy-percentage", "v") {
		return cfg, fmt.Errorf("%w: -vacancy-percentage is required unless it is the sweep variable", errUsage)
	}
	if _, _, err := montecarlo.PlanSweep(v, cfg.params, b, cfg.points); err != nil {
		return cfg, fmt.Errorf("%w: %w", errUsage, err)
	}
	cfg.variable, cfg.bounds = v, b

	return cfg, nil
}
