package gmt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/quakelab/uqplot/internal/config"
)

// Session is one figure's scratch workspace. The toolkit writes its
// gmt.conf and gmt.history into the session directory, so settings
// never leak between concurrent invocations, and every intermediate
// file (palette table, interpolated grid, layered PostScript) lives
// under a uniquely named path removed on Close.
type Session struct {
	Runner *Runner
	Dir    string

	keep  bool
	files []string
}

// NewSession creates a scratch directory and points the runner's
// working directory at it.
func NewSession(r *Runner, keep bool) (*Session, error) {
	dir, err := os.MkdirTemp("", "uqplot-*")
	if err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	r.Dir = dir
	return &Session{Runner: r, Dir: dir, keep: keep}, nil
}

// TempFile returns a unique scratch path with the given suffix and
// registers it for cleanup.
func (s *Session) TempFile(suffix string) string {
	path := filepath.Join(s.Dir, uuid.NewString()+suffix)
	s.files = append(s.files, path)
	return path
}

// ApplyDefaults sets the session-wide toolkit settings: paper size,
// fonts and page orientation.
func (s *Session) ApplyDefaults(ctx context.Context, cfg config.Config) error {
	return s.Runner.Run(ctx, "gmtset",
		"PS_MEDIA", cfg.PaperSize,
		"PS_PAGE_ORIENTATION", "portrait",
		"FONT_ANNOT_PRIMARY", cfg.FontAnnot,
		"FONT_LABEL", cfg.FontLabel,
		"FONT_TITLE", cfg.FontTitle,
		"MAP_FRAME_PEN", "thicker")
}

// Close removes the scratch files and directory unless the session was
// created with keep. Cleanup errors are aggregated so one failed
// removal does not hide the rest.
func (s *Session) Close() error {
	if s.keep {
		return nil
	}

	var result *multierror.Error
	for _, f := range s.files {
		if err := os.Remove(f); err != nil && !os.IsNotExist(err) {
			result = multierror.Append(result, fmt.Errorf("remove %s: %w", f, err))
		}
	}
	if err := os.RemoveAll(s.Dir); err != nil {
		result = multierror.Append(result, fmt.Errorf("remove session dir: %w", err))
	}
	return result.ErrorOrNil()
}
