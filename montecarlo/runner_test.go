package montecarlo_test

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/percolate/lattice"
	"github.com/katalvlaran/percolate/montecarlo"
	"github.com/katalvlaran/percolate/percolation"
)

// RunnerSuite groups tests for single-estimate batches.
type RunnerSuite struct {
	suite.Suite
	runner *montecarlo.Runner
}

func (s *RunnerSuite) SetupTest() {
	s.runner = montecarlo.NewRunner()
}

// TestFullyOccupied: vacancy 0 occupies every cell, so every run percolates.
func (s *RunnerSuite) TestFullyOccupied() {
	p, err := s.runner.Run(5, lattice.Params{Length: 2, Height: 2, VacancyPercentage: 0}, 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1.0, p)
}

// TestFullyVacant: vacancy 1 leaves every cell empty since draws are < 1.
func (s *RunnerSuite) TestFullyVacant() {
	p, err := s.runner.Run(5, lattice.Params{Length: 2, Height: 2, VacancyPercentage: 1}, 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, p)

	one, err := s.runner.Run(3, lattice.Params{Length: 1, Height: 1, VacancyPercentage: 1}, 11)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, one, "a vacant 1×1 grid never percolates")
}

func (s *RunnerSuite) TestDeterministic() {
	params := lattice.Params{Length: 16, Height: 16, VacancyPercentage: 0.42}
	a, err := s.runner.Estimate(200, params, 12345)
	require.NoError(s.T(), err)
	b, err := s.runner.Estimate(200, params, 12345)
	require.NoError(s.T(), err)
	require.Equal(s.T(), a, b)
}

// TestSharedStream checks that runs consume one stream instead of re-seeding:
// reproduce the batch by hand from a single NewRand.
func (s *RunnerSuite) TestSharedStream() {
	params := lattice.Params{Length: 6, Height: 5, VacancyPercentage: 0.4}
	const runs, seed = 40, 7

	rng := montecarlo.NewRand(seed)
	want := 0
	for i := 0; i < runs; i++ {
		g, err := lattice.Generate(params, rng)
		require.NoError(s.T(), err)
		ok, err := percolation.Evaluate(g)
		require.NoError(s.T(), err)
		if ok {
			want++
		}
	}

	est, err := s.runner.Estimate(runs, params, seed)
	require.NoError(s.T(), err)
	require.Equal(s.T(), want, est.Percolated)
	require.Equal(s.T(), float64(want)/runs, est.Probability)
}

func (s *RunnerSuite) TestProbabilityBounds() {
	for _, v := range []float64{0, 0.2, 0.4, 0.6, 0.8, 1} {
		p, err := s.runner.Run(30, lattice.Params{Length: 8, Height: 8, VacancyPercentage: v}, 3)
		require.NoError(s.T(), err)
		require.GreaterOrEqual(s.T(), p, 0.0)
		require.LessOrEqual(s.T(), p, 1.0)
	}
}

func (s *RunnerSuite) TestStdErr() {
	est, err := s.runner.Estimate(1, lattice.Params{Length: 3, Height: 3, VacancyPercentage: 0.5}, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, est.StdErr)

	est, err = s.runner.Estimate(100, lattice.Params{Length: 2, Height: 2, VacancyPercentage: 0}, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, est.StdErr, "constant outcomes have no spread")

	est, err = s.runner.Estimate(400, lattice.Params{Length: 10, Height: 10, VacancyPercentage: 0.41}, 1)
	require.NoError(s.T(), err)
	require.Greater(s.T(), est.StdErr, 0.0)
	require.Less(s.T(), est.StdErr, 0.05)
}

func (s *RunnerSuite) TestInvalidParameters() {
	cases := []struct {
		name string
		runs int
		p    lattice.Params
	}{
		{"ZeroRuns", 0, lattice.Params{Length: 2, Height: 2, VacancyPercentage: 0.5}},
		{"NegativeRuns", -3, lattice.Params{Length: 2, Height: 2, VacancyPercentage: 0.5}},
		{"ZeroHeight", 5, lattice.Params{Length: 2, Height: 0, VacancyPercentage: 0.5}},
		{"VacancyAboveOne", 5, lattice.Params{Length: 2, Height: 2, VacancyPercentage: 1.5}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.runner.Run(tc.runs, tc.p, 1)
			require.True(s.T(), errors.Is(err, montecarlo.ErrInvalidParameter), "got %v", err)
		})
	}
}

// TestRenderingDoesNotChangeResult renders frames and compares with a headless run.
func (s *RunnerSuite) TestRenderingDoesNotChangeResult() {
	params := lattice.Params{Length: 9, Height: 9, VacancyPercentage: 0.4}
	var got []montecarlo.Frame
	rendering := montecarlo.NewRunner(montecarlo.WithRenderer(montecarlo.RendererFunc(func(frames []montecarlo.Frame) error {
		got = append(got, frames...)
		return nil
	})))

	headless, err := s.runner.Estimate(25, params, 5)
	require.NoError(s.T(), err)
	drawn, err := rendering.Estimate(25, params, 5)
	require.NoError(s.T(), err)
	require.Equal(s.T(), headless, drawn)

	require.Len(s.T(), got, montecarlo.MaxGridsRendered)
	for i, f := range got {
		require.Equal(s.T(), i, f.Run)
		ok, err := percolation.Evaluate(f.Grid)
		require.NoError(s.T(), err)
		require.Equal(s.T(), ok, f.Percolates)
	}
}

func (s *RunnerSuite) TestRenderFewerThanCap() {
	calls := 0
	var n int
	r := montecarlo.NewRunner(
		montecarlo.WithMaxRendered(4),
		montecarlo.WithRenderer(montecarlo.RendererFunc(func(frames []montecarlo.Frame) error {
			calls++
			n = len(frames)
			return nil
		})),
	)
	_, err := r.Run(3, lattice.Params{Length: 3, Height: 3, VacancyPercentage: 0.5}, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, calls, "one render per batch")
	require.Equal(s.T(), 3, n)

	_, err = r.Run(10, lattice.Params{Length: 3, Height: 3, VacancyPercentage: 0.5}, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, n)
}

func (s *RunnerSuite) TestRenderError() {
	boom := errors.New("display unavailable")
	r := montecarlo.NewRunner(montecarlo.WithRenderer(montecarlo.RendererFunc(func([]montecarlo.Frame) error {
		return boom
	})))
	est, err := r.Estimate(4, lattice.Params{Length: 2, Height: 2, VacancyPercentage: 0}, 1)
	require.True(s.T(), errors.Is(err, montecarlo.ErrRender))
	require.True(s.T(), errors.Is(err, boom))
	require.Equal(s.T(), 1.0, est.Probability, "estimate survives a render failure")
}

func (s *RunnerSuite) TestLogger() {
	var buf bytes.Buffer
	r := montecarlo.NewRunner(montecarlo.WithLogger(log.New(&buf, "", 0)))
	_, err := r.Run(4, lattice.Params{Length: 2, Height: 2, VacancyPercentage: 0}, 1)
	require.NoError(s.T(), err)
	require.Contains(s.T(), buf.String(), "4/4 percolated")
}

func (s *RunnerSuite) TestOptionPanics() {
	require.Panics(s.T(), func() { montecarlo.WithRenderer(nil) })
	require.Panics(s.T(), func() { montecarlo.WithMaxRendered(0) })
	require.Panics(s.T(), func() { montecarlo.WithLogger(nil) })
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}
