// Package render draws Monte Carlo outputs for people to look at. Nothing in
// it is consulted by the simulation.
//
//   - GridSheet implements montecarlo.Renderer: it tiles up to 16 lattices
//     into one PNG, white for vacant cells and black for occupied ones, each
//     tile titled with its percolation result.
//   - SaveSweep writes a probability-vs-parameter scatter plot; the image
//     format follows the file extension (png, svg, pdf, ...).
//   - WriteSweepHTML writes the same curve as an interactive ECharts page.
package render
