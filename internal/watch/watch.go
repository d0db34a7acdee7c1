// Package watch re-runs a render callback whenever an input table
// changes on disk.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounce coalesces editor write bursts into one re-render.
const debounce = 250 * time.Millisecond

// Files watches the named files and calls render after each change,
// until ctx is cancelled. The initial render is the caller's job.
func Files(ctx context.Context, log *zap.Logger, files []string, render func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	watched := make(map[string]bool)
	for _, f := range files {
		if f == "" {
			continue
		}
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		// Watch the directory: editors often replace files rather
		// than write in place, which drops plain file watches.
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return err
		}
		watched[abs] = true
	}

	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", zap.Error(err))

		case <-fire:
			log.Info("input changed, re-rendering")
			if err := render(); err != nil {
				log.Error("re-render failed", zap.Error(err))
			}
		}
	}
}
