package table

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	input := `# lon lat misfit
-120.5  34.1  1.2e-3

-118.0  36.8  4.7e-3
> segment header
-119.2  35.0  0.9e-3  extra-column-ignored
`
	tbl, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	want := []Sample{
		{X: -120.5, Y: 34.1, V: 1.2e-3},
		{X: -118.0, Y: 36.8, V: 4.7e-3},
		{X: -119.2, Y: 35.0, V: 0.9e-3},
	}
	if diff := cmp.Diff(want, tbl.Samples); diff != "" {
		t.Errorf("samples mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"comments only", "# a\n# b\n"},
		{"too few columns", "1.0 2.0\n"},
		{"non-numeric x", "abc 2.0 3.0\n"},
		{"non-numeric value", "1.0 2.0 xyz\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "misfit.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2 3\n4 5 6\n"), 0644))

	tbl, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, path, tbl.Path)
	assert.Len(t, tbl.Samples, 2)
}

func TestBestWorst(t *testing.T) {
	tbl := &Table{Samples: []Sample{
		{X: 1, Y: 1, V: 0.5},
		{X: 2, Y: 2, V: 0.1},
		{X: 3, Y: 3, V: 0.9},
		{X: 4, Y: 4, V: 0.1}, // tie: first occurrence wins
	}}

	assert.Equal(t, Sample{X: 2, Y: 2, V: 0.1}, tbl.Best())
	assert.Equal(t, Sample{X: 3, Y: 3, V: 0.9}, tbl.Worst())
}

func TestColumns(t *testing.T) {
	tbl := &Table{Samples: []Sample{{X: 1, Y: 2, V: 3}, {X: 4, Y: 5, V: 6}}}
	xs, ys, vs := tbl.Columns()
	assert.Equal(t, []float64{1, 4}, xs)
	assert.Equal(t, []float64{2, 5}, ys)
	assert.Equal(t, []float64{3, 6}, vs)
}
