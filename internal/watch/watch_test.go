package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFiles_ReturnsOnCancel(t *testing.T) {
	f := filepath.Join(t.TempDir(), "misfit.txt")
	require.NoError(t, os.WriteFile(f, []byte("1 2 3\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Files(ctx, zap.NewNop(), []string{f}, func() error { return nil })
	}()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestFiles_RerendersOnWrite(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "misfit.txt")
	require.NoError(t, os.WriteFile(f, []byte("1 2 3\n"), 0644))

	rendered := make(chan struct{}, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	go func() {
		_ = Files(ctx, zap.NewNop(), []string{f, ""}, func() error {
			select {
			case rendered <- struct{}{}:
			default:
			}
			return nil
		})
	}()

	// Give the watcher time to register before touching the file.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(f, []byte("4 5 6\n"), 0644))

	select {
	case <-rendered:
	case <-ctx.Done():
		t.Fatal("no re-render after file change")
	}
}

func TestFiles_IgnoresUnwatchedSiblings(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "misfit.txt")
	other := filepath.Join(dir, "unrelated.txt")
	require.NoError(t, os.WriteFile(f, []byte("1 2 3\n"), 0644))

	rendered := make(chan struct{}, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = Files(ctx, zap.NewNop(), []string{f}, func() error {
			rendered <- struct{}{}
			return nil
		})
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(other, []byte("x\n"), 0644))

	select {
	case <-rendered:
		t.Fatal("render fired for an unwatched file")
	case <-time.After(600 * time.Millisecond):
	}
}
