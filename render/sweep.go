package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/percolate/montecarlo"
)

// SaveSweep writes a scatter plot of points to path, sized w×h.
func SaveSweep(path string, variable montecarlo.Variable, points []montecarlo.SweepPoint, w, h vg.Length) error {
	p := plot.New()
	p.Title.Text = "Percolation probability"
	p.X.Label.Text = string(variable)
	p.Y.Label.Text = "P(percolates)"
	p.Y.Min, p.Y.Max = 0, 1
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i] = plotter.XY{X: pt.Value, Y: pt.Probability}
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("render: sweep scatter: %w", err)
	}
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(2)
	p.Add(sc)

	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}

	return nil
}

// WriteSweepHTML writes points as an interactive ECharts scatter page.
func WriteSweepHTML(w io.Writer, variable montecarlo.Variable, points []montecarlo.SweepPoint) error {
	data := make([]opts.ScatterData, 0, len(points))
	for _, pt := range points {
		data = append(data, opts.ScatterData{Value: []interface{}{pt.Value, pt.Probability}})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Percolation sweep", Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Percolation probability", Subtitle: fmt.Sprintf("variable=%s points=%d", variable, len(points))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: string(variable), NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Min: 0, Max: 1, Name: "P(percolates)", NameLocation: "middle", NameGap: 30}),
	)
	scatter.AddSeries("probability", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("render: sweep html: %w", err)
	}

	return nil
}
