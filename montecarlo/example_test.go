package montecarlo_test

import (
	"fmt"

	"github.com/katalvlaran/percolate/lattice"
	"github.com/katalvlaran/percolate/montecarlo"
)

// ExampleRunner_Run estimates the percolation probability of a fully
// occupied 2×2 lattice.
func ExampleRunner_Run() {
	r := montecarlo.NewRunner()
	p, _ := r.Run(5, lattice.Params{Length: 2, Height: 2, VacancyPercentage: 0}, 0)
	fmt.Println(p)

	// Output:
	// 1
}

// ExampleRunner_Sweep sweeps the vacancy percentage of a 2×2 lattice across
// its full range at three points.
func ExampleRunner_Sweep() {
	r := montecarlo.NewRunner()
	base := lattice.Params{Length: 2, Height: 2}
	pts, _ := r.Sweep(montecarlo.VariableVacancy, 10, base, 0, montecarlo.Bounds{Low: 0, High: 1}, 3)
	fmt.Printf("%g -> %g\n", pts[0].Value, pts[0].Probability)
	fmt.Printf("%g -> %g\n", pts[2].Value, pts[2].Probability)

	// Output:
	// 0 -> 1
	// 1 -> 0
}
