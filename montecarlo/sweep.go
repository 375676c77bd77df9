package montecarlo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/percolate/lattice"
)

// Variable names the lattice parameter a sweep varies.
type Variable string

const (
	VariableLength  Variable = "length"
	VariableHeight  Variable = "height"
	VariableVacancy Variable = "vacancy_percentage"
)

// ParseVariable accepts "length", "height" and "vacancy_percentage"
// (also spelled "vacancy-percentage").
func ParseVariable(name string) (Variable, error) {
	switch strings.TrimSpace(name) {
	case string(VariableLength):
		return VariableLength, nil
	case string(VariableHeight):
		return VariableHeight, nil
	case string(VariableVacancy), "vacancy-percentage":
		return VariableVacancy, nil
	}

	return "", fmt.Errorf("%w: unknown sweep variable %q (want length, height or vacancy_percentage)",
		ErrInvalidParameter, name)
}

// apply returns base with v set to value. Integer parameters truncate
// toward zero.
func (v Variable) apply(base lattice.Params, value float64) (lattice.Params, error) {
	switch v {
	case VariableLength:
		base.Length = int(value)
	case VariableHeight:
		base.Height = int(value)
	case VariableVacancy:
		base.VacancyPercentage = value
	default:
		return base, fmt.Errorf("%w: unknown sweep variable %q", ErrInvalidParameter, string(v))
	}

	return base, nil
}

// Bounds is a closed sweep range.
type Bounds struct {
	Low, High float64
}

// Validate requires finite values with Low <= High.
func (b Bounds) Validate() error {
	if math.IsNaN(b.Low) || math.IsInf(b.Low, 0) || math.IsNaN(b.High) || math.IsInf(b.High, 0) {
		return fmt.Errorf("%w: bounds must be finite, got [%g, %g]", ErrInvalidParameter, b.Low, b.High)
	}
	if b.Low > b.High {
		return fmt.Errorf("%w: lower bound %g exceeds upper bound %g", ErrInvalidParameter, b.Low, b.High)
	}

	return nil
}

// ParseBounds parses "LOW,HIGH".
func ParseBounds(s string) (Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Bounds{}, fmt.Errorf("%w: invalid bounds %q: expected LOW,HIGH", ErrInvalidParameter, s)
	}
	low, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Bounds{}, fmt.Errorf("%w: invalid lower bound %q: %v", ErrInvalidParameter, parts[0], err)
	}
	high, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Bounds{}, fmt.Errorf("%w: invalid upper bound %q: %v", ErrInvalidParameter, parts[1], err)
	}
	b := Bounds{Low: low, High: high}
	if err := b.Validate(); err != nil {
		return Bounds{}, err
	}

	return b, nil
}

// Linspace returns n evenly spaced values from b.Low to b.High inclusive.
// n == 1 yields [b.Low].
func Linspace(b Bounds, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: number of sweep points must be positive, got %d", ErrInvalidParameter, n)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if n == 1 {
		return []float64{b.Low}, nil
	}

	return floats.Span(make([]float64, n), b.Low, b.High), nil
}

// PlanSweep returns the numPoints values of v over b and the parameter set
// for each, with every set validated.
func PlanSweep(v Variable, base lattice.Params, b Bounds, numPoints int) ([]float64, []lattice.Params, error) {
	xs, err := Linspace(b, numPoints)
	if err != nil {
		return nil, nil, err
	}
	params := make([]lattice.Params, len(xs))
	for i, x := range xs {
		p, err := v.apply(base, x)
		if err != nil {
			return nil, nil, err
		}
		if err := p.Validate(); err != nil {
			return nil, nil, fmt.Errorf("montecarlo: sweep %s=%g: %w", v, x, err)
		}
		params[i] = p
	}

	return xs, params, nil
}

// Sweep estimates the percolation probability at numPoints evenly spaced
// values of v over b, each with numRuns runs and the same seed. The whole
// plan is validated before the first run.
func (r *Runner) Sweep(v Variable, numRuns int, base lattice.Params, seed int64, b Bounds, numPoints int) ([]SweepPoint, error) {
	if numRuns <= 0 {
		return nil, fmt.Errorf("%w: number of runs must be positive, got %d", ErrInvalidParameter, numRuns)
	}
	xs, params, err := PlanSweep(v, base, b, numPoints)
	if err != nil {
		return nil, err
	}

	out := make([]SweepPoint, len(xs))
	for i, p := range params {
		est, _, err := r.batch(numRuns, p, seed, false)
		if err != nil {
			return nil, fmt.Errorf("montecarlo: sweep %s=%g: %w", v, xs[i], err)
		}
		if r.logger != nil {
			r.logger.Printf("sweep %d/%d %s=%g: p=%.4f", i+1, len(xs), v, xs[i], est.Probability)
		}
		out[i] = SweepPoint{Value: xs[i], Probability: est.Probability}
	}

	return out, nil
}
