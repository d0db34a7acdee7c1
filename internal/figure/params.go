// Package figure assembles the layered toolkit pipelines that render
// uncertainty figures: lat/lon misfit maps and force-orientation maps.
package figure

import (
	"fmt"
	"strconv"
	"strings"
)

// Marker type codes used when no marker-coordinates file is supplied.
const (
	MarkerNone   = -1 // no marker
	MarkerCircle = 0  // circle at the best-fitting sample
	MarkerStar   = 1  // star at the best-fitting sample
)

// Params are the sixteen positional arguments shared by both plot
// commands, in their command-line order.
type Params struct {
	Filename         string  // 1: output image base name
	Filetype         string  // 2: PNG, JPG, BMP, TIFF, PDF or PS
	DataFile         string  // 3: (x, y, value) sample table
	SupplementalFile string  // 4: best-source overlay table, optional
	ZMin             float64 // 5: colorbar range minimum
	ZMax             float64 // 6: colorbar range maximum
	ZExp             int     // 7: colorbar exponent
	CPTStep          float64 // 8: color-palette step
	CPTName          string  // 9: palette name
	FlipCPT          bool    // 10: reverse the palette
	ColorbarType     int     // 11: 0 disables the colorbar
	ColorbarLabel    string  // 12: colorbar annotation text
	MarkerCoords     string  // 13: marker-coordinates file, or "None"
	MarkerType       int     // 14: symbol code at the data minimum
	Title            string  // 15
	Subtitle         string  // 16
}

// ParseArgs decodes the sixteen positional arguments. Anything other
// than exactly sixteen, or a numeric field that does not parse, is an
// error and no figure is produced.
func ParseArgs(args []string) (Params, error) {
	if len(args) != 16 {
		return Params{}, fmt.Errorf("expected 16 arguments, got %d", len(args))
	}

	p := Params{
		Filename:         args[0],
		Filetype:         strings.ToUpper(args[1]),
		DataFile:         args[2],
		SupplementalFile: args[3],
		CPTName:          args[8],
		ColorbarLabel:    args[11],
		MarkerCoords:     args[12],
		Title:            args[14],
		Subtitle:         args[15],
	}

	var err error
	if p.ZMin, err = strconv.ParseFloat(args[4], 64); err != nil {
		return Params{}, fmt.Errorf("bad zmin %q", args[4])
	}
	if p.ZMax, err = strconv.ParseFloat(args[5], 64); err != nil {
		return Params{}, fmt.Errorf("bad zmax %q", args[5])
	}
	if p.ZExp, err = strconv.Atoi(args[6]); err != nil {
		return Params{}, fmt.Errorf("bad exponent %q", args[6])
	}
	if p.CPTStep, err = strconv.ParseFloat(args[7], 64); err != nil {
		return Params{}, fmt.Errorf("bad palette step %q", args[7])
	}

	flip, err := strconv.Atoi(args[9])
	if err != nil {
		return Params{}, fmt.Errorf("bad flip flag %q", args[9])
	}
	p.FlipCPT = flip != 0

	if p.ColorbarType, err = strconv.Atoi(args[10]); err != nil {
		return Params{}, fmt.Errorf("bad colorbar type %q", args[10])
	}
	if p.MarkerType, err = strconv.Atoi(args[13]); err != nil {
		return Params{}, fmt.Errorf("bad marker type %q", args[13])
	}

	// "None" and an empty string both mean no coordinates file.
	if p.MarkerCoords == "None" {
		p.MarkerCoords = ""
	}
	if p.SupplementalFile == "None" {
		p.SupplementalFile = ""
	}

	return p, nil
}
