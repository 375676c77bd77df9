package lattice_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/percolate/lattice"
)

// ExampleGenerate samples a fully occupied lattice; with a vacancy percentage
// of zero every draw in [0,1) marks its cell occupied.
func ExampleGenerate() {
	p := lattice.Params{Length: 4, Height: 2, VacancyPercentage: 0}
	g, _ := lattice.Generate(p, rand.New(rand.NewSource(0)))
	fmt.Println(g)
	fmt.Println("occupied:", g.OccupiedCount())

	// Output:
	// ####
	// ####
	// occupied: 8
}

// ExampleNeighbors lists the neighbours of the top-right corner of a 3×3 grid.
func ExampleNeighbors() {
	fmt.Println(lattice.Neighbors(2, 3, 3))

	// Output:
	// [1 5]
}
