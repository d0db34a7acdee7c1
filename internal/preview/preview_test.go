package preview

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quakelab/uqplot/internal/table"
)

func TestGradientColor_Endpoints(t *testing.T) {
	assert.Equal(t, gradientPoints[0].Color, gradientColor(-0.5))
	assert.Equal(t, gradientPoints[0].Color, gradientColor(0))
	assert.Equal(t, gradientPoints[len(gradientPoints)-1].Color, gradientColor(1))
	assert.Equal(t, gradientPoints[len(gradientPoints)-1].Color, gradientColor(1.5))
}

func TestGradientColor_Midpoint(t *testing.T) {
	// 0.5 sits exactly on a stop.
	assert.Equal(t, color.RGBA{33, 145, 140, 255}, gradientColor(0.5))
}

func TestGradientColor_Interpolates(t *testing.T) {
	c := gradientColor(0.125)
	lo, hi := gradientPoints[0].Color, gradientPoints[1].Color
	assert.InDelta(t, (float64(lo.R)+float64(hi.R))/2, float64(c.R), 1)
	assert.InDelta(t, (float64(lo.G)+float64(hi.G))/2, float64(c.G), 1)
	assert.InDelta(t, (float64(lo.B)+float64(hi.B))/2, float64(c.B), 1)
}

func TestRender(t *testing.T) {
	tbl := &table.Table{Samples: []table.Sample{
		{X: -120.5, Y: 34.0, V: 1.2e-3},
		{X: -118.0, Y: 36.5, V: 4.7e-3},
		{X: -119.0, Y: 35.0, V: 0.9e-3},
	}}

	path := filepath.Join(t.TempDir(), "preview.png")
	require.NoError(t, Render(tbl, "Event", "Longitude", "Latitude", path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRender_ConstantValues(t *testing.T) {
	// A constant-value table must not divide by a zero value span.
	tbl := &table.Table{Samples: []table.Sample{
		{X: 0, Y: 0, V: 1},
		{X: 1, Y: 1, V: 1},
	}}

	path := filepath.Join(t.TempDir(), "flat.png")
	require.NoError(t, Render(tbl, "", "x", "y", path))
}
