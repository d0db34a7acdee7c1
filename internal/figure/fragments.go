package figure

import (
	"fmt"
	"math"
	"strings"

	"github.com/quakelab/uqplot/internal/axes"
)

// formatCodes maps output filetypes to the toolkit's psconvert codes.
// PS is absent: the layered PostScript file is the native product and
// is copied out without conversion.
var formatCodes = map[string]string{
	"PNG":  "g",
	"JPG":  "j",
	"JPEG": "j",
	"BMP":  "b",
	"TIFF": "t",
	"PDF":  "f",
}

// formatCode returns the psconvert -T code for a filetype.
func formatCode(filetype string) (string, error) {
	code, ok := formatCodes[filetype]
	if !ok {
		return "", fmt.Errorf("unsupported filetype %q", filetype)
	}
	return code, nil
}

// outputExtension returns the file extension for a filetype.
func outputExtension(filetype string) string {
	return strings.ToLower(filetype)
}

// regionFlag formats the padded plot bounds as a -R argument.
func regionFlag(ax axes.Axes) string {
	return fmt.Sprintf("-R%g/%g/%g/%g", ax.X.Min, ax.X.Max, ax.Y.Min, ax.Y.Max)
}

// frameFlags formats the per-axis annotation flags with the derived
// tick intervals and axis labels.
func frameFlags(ax axes.Axes, xLabel, yLabel string) []string {
	return []string{
		fmt.Sprintf("-Bxa%g+l%s", ax.XTick, xLabel),
		fmt.Sprintf("-Bya%g+l%s", ax.YTick, yLabel),
		"-BWSen",
	}
}

// colorbarAnnotation builds the psscale -B argument: the annotation
// interval is a quarter of the colorbar range, and a nonzero exponent
// appends a power-of-ten suffix to the label.
func colorbarAnnotation(zMin, zMax float64, label string, exp int) string {
	annot := (zMax - zMin) / 4
	text := label
	if exp != 0 {
		text = fmt.Sprintf("%s (10@+%d@+)", label, exp)
	}
	if text == "" {
		return fmt.Sprintf("-Ba%g", annot)
	}
	return fmt.Sprintf("-Ba%g+l%s", annot, text)
}

// markerSymbol returns the psxy symbol flag for a marker type code.
// Negative codes disable the marker.
func markerSymbol(markerType int, size string) (string, bool) {
	switch markerType {
	case MarkerCircle:
		return "-Sc" + size, true
	case MarkerStar:
		return "-Sa" + size, true
	default:
		return "", false
	}
}

// titleLines formats pstext input placing the title and subtitle above
// the plot frame, in a normalized 0-1 coordinate frame.
func titleLines(title, subtitle string) string {
	var b strings.Builder
	if title != "" {
		fmt.Fprintf(&b, "0.5 1.12 %s\n", title)
	}
	if subtitle != "" {
		fmt.Fprintf(&b, "0.5 1.05 %s\n", subtitle)
	}
	return b.String()
}

// referenceArcs generates multi-segment psxy input marking constant
// takeoff angles on a force-orientation map: one horizontal line at
// h = cos(angle) per reference angle, spanning the azimuth range.
func referenceArcs(ax axes.Axes, angles []float64) string {
	var b strings.Builder
	for _, deg := range angles {
		h := math.Cos(deg * math.Pi / 180)
		fmt.Fprintf(&b, "> %g deg\n", deg)
		fmt.Fprintf(&b, "%g %g\n", ax.X.Min, h)
		fmt.Fprintf(&b, "%g %g\n", ax.X.Max, h)
	}
	return b.String()
}
