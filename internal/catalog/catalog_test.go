package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "figures.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRecordAndRecent(t *testing.T) {
	c := openTestCatalog(t)

	e := &Entry{
		Kind:       "latlon",
		Output:     "/tmp/out.png",
		DataFile:   "/tmp/misfit.txt",
		XMin:       -121, XMax: -117,
		YMin:       33, YMax: 37,
		DurationMS: 420,
	}
	require.NoError(t, c.Record(e))
	assert.NotEmpty(t, e.ID, "Record should assign an ID")

	entries, err := c.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, "latlon", got.Kind)
	assert.Equal(t, "/tmp/out.png", got.Output)
	assert.Equal(t, -121.0, got.XMin)
	assert.Equal(t, int64(420), got.DurationMS)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestRecent_Limit(t *testing.T) {
	c := openTestCatalog(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, c.Record(&Entry{Kind: "force", Output: "o", DataFile: "d"}))
	}

	entries, err := c.Recent(3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestOpen_ReopenExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figures.db")

	c, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, c.Record(&Entry{Kind: "latlon", Output: "o", DataFile: "d"}))
	require.NoError(t, c.Close())

	c2, err := Open(path)
	require.NoError(t, err)
	defer c2.Close()

	entries, err := c2.Recent(10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
