// Command percolate estimates the probability that a random 2-D lattice
// percolates from its left edge to its right edge.
//
// Single estimate:
//
//	percolate -length 20 -height 20 -seed 1 -vacancy-percentage 0.4 -num-runs 100
//
// Sweep the vacancy percentage and plot the curve:
//
//	percolate -length 20 -height 20 -seed 1 -plot-runs -variable vacancy_percentage -bounds 0,1
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/percolate/montecarlo"
	"github.com/katalvlaran/percolate/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "percolate: ", 0)

	cfg, err := parseFlags(args, stderr)
	if err != nil {
		logger.Print(err)
		return 2
	}

	var opts []montecarlo.Option
	if cfg.verbose {
		opts = append(opts, montecarlo.WithLogger(logger))
	}
	if cfg.draw {
		opts = append(opts, montecarlo.WithRenderer(render.NewGridSheet(cfg.drawOut)))
	}
	runner := montecarlo.NewRunner(opts...)

	if cfg.plotRuns {
		if err := sweep(runner, cfg, stdout); err != nil {
			logger.Print(err)
			return 1
		}
		return 0
	}

	p, err := runner.Run(cfg.numRuns, cfg.params, cfg.seed)
	if err != nil {
		logger.Print(err)
		if errors.Is(err, montecarlo.ErrRender) {
			fmt.Fprintf(stdout, "percolation probability: %g\n", p)
		}
		return 1
	}
	fmt.Fprintf(stdout, "percolation probability: %g\n", p)
	if cfg.draw {
		logger.Printf("wrote %s", cfg.drawOut)
	}

	return 0
}

func sweep(runner *montecarlo.Runner, cfg config, stdout io.Writer) error {
	points, err := runner.Sweep(cfg.variable, cfg.numRuns, cfg.params, cfg.seed, cfg.bounds, cfg.points)
	if err != nil {
		return err
	}
	for _, pt := range points {
		fmt.Fprintf(stdout, "%g\t%g\n", pt.Value, pt.Probability)
	}

	if err := render.SaveSweep(cfg.plotOut, cfg.variable, points, 8*vg.Inch, 5*vg.Inch); err != nil {
		return err
	}
	if cfg.htmlOut == "" {
		return nil
	}
	f, err := os.Create(cfg.htmlOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", cfg.htmlOut, err)
	}
	if err := render.WriteSweepHTML(f, cfg.variable, points); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
