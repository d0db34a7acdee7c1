// Package axes derives plot bounds and tick spacing from the extent of
// the input samples.
package axes

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// PadFraction is the fraction of the unpadded span added on each side
// of the plot region.
const PadFraction = 0.1

// Range is a closed interval on one axis.
type Range struct {
	Min float64
	Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Pad widens the range by frac of its span on each side.
func (r Range) Pad(frac float64) Range {
	pad := frac * r.Span()
	return Range{Min: r.Min - pad, Max: r.Max + pad}
}

// Axes holds the derived plot geometry: padded plot bounds and tick
// intervals for both axes.
type Axes struct {
	X     Range // padded
	Y     Range // padded
	XTick float64
	YTick float64
}

// Derive computes axes from the x and y columns: true extrema, padded
// by PadFraction on each side, with a tick interval of half the
// unpadded span. Zero-span columns are passed through unmodified; the
// resulting degenerate region is the renderer's problem, matching the
// original behaviour.
func Derive(xs, ys []float64) (Axes, error) {
	if len(xs) == 0 || len(ys) == 0 {
		return Axes{}, fmt.Errorf("no samples")
	}

	x := Range{Min: floats.Min(xs), Max: floats.Max(xs)}
	y := Range{Min: floats.Min(ys), Max: floats.Max(ys)}

	return Axes{
		X:     x.Pad(PadFraction),
		Y:     y.Pad(PadFraction),
		XTick: x.Span() / 2,
		YTick: y.Span() / 2,
	}, nil
}
