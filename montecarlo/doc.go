// Package montecarlo estimates percolation probabilities by repeated sampling.
//
// What:
//
//   - Runner.Run seeds one random stream, samples numRuns lattices from it
//     (never re-seeding between runs) and returns the fraction that percolate.
//   - Runner.Estimate returns the same fraction together with the raw counts
//     and the standard error of the estimate.
//   - Runner.Sweep varies one lattice parameter (length, height or vacancy
//     percentage) over evenly spaced points of a closed range and runs an
//     independent, identically seeded estimate at each point, producing a
//     probability-vs-parameter curve.
//
// Determinism:
//
//	Every call to Run builds its own *rand.Rand from the seed, so equal inputs
//	give equal outputs, and each sweep point is reproducible on its own.
//
// Rendering:
//
//	A Renderer (see WithRenderer) receives up to MaxGridsRendered frames after
//	a batch finishes. It only observes results; it never feeds back into them.
//	Sweeps do not render.
//
// Errors:
//
//   - ErrInvalidParameter: non-positive run or point count, invalid lattice
//     parameters, unknown sweep variable, malformed bounds. Reported before
//     any run starts.
//   - ErrRender: the renderer failed; the estimate is still returned.
//
// A Runner holds only configuration; calls run sequentially on the caller's
// goroutine.
package montecarlo
