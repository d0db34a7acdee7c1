// Package preview renders a native PNG approximation of a figure so
// input tables can be sanity-checked without the external toolkit. It
// is deliberately crude: colored sample points, no interpolation.
package preview

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/quakelab/uqplot/internal/axes"
	"github.com/quakelab/uqplot/internal/table"
)

// gradientPoints is a viridis-like ramp from low to high values.
var gradientPoints = []struct {
	Pos   float64
	Color color.RGBA
}{
	{0.00, color.RGBA{68, 1, 84, 255}},
	{0.25, color.RGBA{59, 82, 139, 255}},
	{0.50, color.RGBA{33, 145, 140, 255}},
	{0.75, color.RGBA{94, 201, 98, 255}},
	{1.00, color.RGBA{253, 231, 37, 255}},
}

// gradientColor interpolates the ramp at t in [0, 1].
func gradientColor(t float64) color.RGBA {
	if t <= 0 {
		return gradientPoints[0].Color
	}
	if t >= 1 {
		return gradientPoints[len(gradientPoints)-1].Color
	}
	for i := 0; i < len(gradientPoints)-1; i++ {
		p1, p2 := gradientPoints[i], gradientPoints[i+1]
		if t > p2.Pos {
			continue
		}
		f := (t - p1.Pos) / (p2.Pos - p1.Pos)
		return color.RGBA{
			R: uint8(float64(p1.Color.R) + f*(float64(p2.Color.R)-float64(p1.Color.R))),
			G: uint8(float64(p1.Color.G) + f*(float64(p2.Color.G)-float64(p1.Color.G))),
			B: uint8(float64(p1.Color.B) + f*(float64(p2.Color.B)-float64(p1.Color.B))),
			A: 255,
		}
	}
	return gradientPoints[len(gradientPoints)-1].Color
}

// Render writes a PNG preview of the table to path, using the same
// padded bounds the toolkit figure would get.
func Render(tbl *table.Table, title, xLabel, yLabel, path string) error {
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
	vSpan := vMax - vMin
	if vSpan == 0 {
		vSpan = 1
	}

	pts := make(plotter.XYs, len(tbl.Samples))
	for i, s := range tbl.Samples {
		pts[i] = plotter.XY{X: s.X, Y: s.Y}
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("build scatter: %w", err)
	}
	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		t := (tbl.Samples[i].V - vMin) / vSpan
		return draw.GlyphStyle{
			Color:  gradientColor(t),
			Radius: vg.Points(3),
			Shape:  draw.BoxGlyph{},
		}
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Min, p.X.Max = ax.X.Min, ax.X.Max
	p.Y.Min, p.Y.Max = ax.Y.Min, ax.Y.Max
	p.Add(scatter)

	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save preview: %w", err)
	}
	return nil
}
