package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/katalvlaran/percolate/lattice"
	"github.com/katalvlaran/percolate/montecarlo"
)

// maxTilesPerSide bounds the sheet to 4×4 tiles.
const maxTilesPerSide = 4

// GridSheet renders a batch of frames as a tiled PNG at Path.
type GridSheet struct {
	Path          string
	Width, Height vg.Length
}

// NewGridSheet returns a 12×8 inch sheet writing to path.
func NewGridSheet(path string) *GridSheet {
	return &GridSheet{Path: path, Width: 12 * vg.Inch, Height: 8 * vg.Inch}
}

// Layout returns the tile grid for n frames: rows = min(ceil(sqrt(n)), 4),
// cols = min(ceil(n/rows), 4). n <= 0 yields 0×0.
func Layout(n int) (rows, cols int) {
	if n <= 0 {
		return 0, 0
	}
	rows = min(int(math.Ceil(math.Sqrt(float64(n)))), maxTilesPerSide)
	cols = min((n+rows-1)/rows, maxTilesPerSide)

	return rows, cols
}

// Render writes frames to g.Path. Frames beyond the 4×4 sheet are dropped.
func (g *GridSheet) Render(frames []montecarlo.Frame) error {
	if len(frames) == 0 {
		return nil
	}
	rows, cols := Layout(len(frames))
	plots := make([][]*plot.Plot, rows)
	for j := range plots {
		plots[j] = make([]*plot.Plot, cols)
		for i := range plots[j] {
			k := j*cols + i
			if k >= len(frames) {
				blank := plot.New()
				blank.HideAxes()
				plots[j][i] = blank
				continue
			}
			p, err := gridPlot(frames[k])
			if err != nil {
				return fmt.Errorf("render: frame %d: %w", frames[k].Run, err)
			}
			plots[j][i] = p
		}
	}

	img := vgimg.New(g.Width, g.Height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 8,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, dc)
	for j := range plots {
		for i := range plots[j] {
			plots[j][i].Draw(canvases[j][i])
		}
	}

	f, err := os.Create(g.Path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", g.Path, err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("render: write %s: %w", g.Path, err)
	}

	return f.Close()
}

func gridPlot(f montecarlo.Frame) (*plot.Plot, error) {
	if f.Grid == nil {
		return nil, errors.New("nil grid")
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Percolates? %t", f.Percolates)
	p.HideAxes()

	hm := plotter.NewHeatMap(occupancy{f.Grid}, binaryPalette{})
	hm.Min, hm.Max = 0, 1
	p.Add(hm)

	return p, nil
}

// occupancy adapts a grid to plotter.GridXYZ with row 0 drawn at the top.
type occupancy struct {
	g *lattice.Grid
}

func (o occupancy) Dims() (c, r int) { return o.g.Length(), o.g.Height() }

func (o occupancy) Z(c, r int) float64 {
	if o.g.Occupied(o.g.Index(c, o.g.Height()-1-r)) {
		return 1
	}
	return 0
}

func (o occupancy) X(c int) float64 { return float64(c) }

func (o occupancy) Y(r int) float64 { return float64(r) }

// binaryPalette maps 0 to white (vacant) and 1 to black (occupied).
type binaryPalette struct{}

func (binaryPalette) Colors() []color.Color {
	return []color.Color{color.White, color.Black}
}
