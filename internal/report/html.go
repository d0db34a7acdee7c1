// Package report writes a standalone HTML page of the misfit surface
// for browser inspection alongside the rendered figure.
package report

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/quakelab/uqplot/internal/axes"
	"github.com/quakelab/uqplot/internal/table"
)

// viridis matches the palette used by the native preview.
var viridis = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// Write renders the table as a value-colored scatter chart to path.
func Write(tbl *table.Table, title, subtitle, xLabel, yLabel, path string) error {
	xs, ys, vs := tbl.Columns()
	ax, err := axes.Derive(xs, ys)
	if err != nil {
		return err
	}

	vMin, vMax := vs[0], vs[0]
	for _, v := range vs {
		if v < vMin {
			vMin = v
		}
		if v > vMax {
			vMax = v
		}
	}
	if vMax == vMin {
		vMax = vMin + 1
	}

	data := make([]opts.ScatterData, 0, len(tbl.Samples))
	for _, s := range tbl.Samples {
		data = append(data, opts.ScatterData{Value: []interface{}{s.X, s.Y, s.V}})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title, Width: "900px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Min: ax.X.Min, Max: ax.X.Max, Name: xLabel,
			NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{
			Min: ax.Y.Min, Max: ax.Y.Max, Name: yLabel,
			NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(vMin),
			Max:        float32(vMax),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: viridis},
		}),
	)
	scatter.AddSeries("misfit", data,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer f.Close()

	if err := scatter.Render(f); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}
