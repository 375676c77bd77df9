package percolation_test

import (
	"fmt"

	"github.com/katalvlaran/percolate/lattice"
	"github.com/katalvlaran/percolate/percolation"
)

// ExampleEvaluate checks a 4×3 lattice whose occupied cells wind from the
// left edge to the right edge.
//
//	#...
//	###.
//	..##
func ExampleEvaluate() {
	g, _ := lattice.NewGrid(4, 3, []bool{
		true, false, false, false,
		true, true, true, false,
		false, false, true, true,
	})
	ok, _ := percolation.Evaluate(g)
	fmt.Println("percolates:", ok)

	// Output:
	// percolates: true
}
