package figure

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/quakelab/uqplot/internal/axes"
	"github.com/quakelab/uqplot/internal/config"
	"github.com/quakelab/uqplot/internal/gmt"
	"github.com/quakelab/uqplot/internal/table"
)

// Renderer drives the toolkit pipeline for one figure at a time.
type Renderer struct {
	Run      *gmt.Runner
	Cfg      config.Config
	Log      *zap.Logger
	KeepTemp bool
}

// NewRenderer creates a renderer with the given toolkit runner and
// settings.
func NewRenderer(run *gmt.Runner, cfg config.Config, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{Run: run, Cfg: cfg, Log: log}
}

// kind holds the per-figure-type differences; everything else in the
// pipeline is shared.
type kind struct {
	name       string
	projection string // -J argument
	xLabel     string
	yLabel     string
	arcs       bool // draw reference arcs before the overlay
	overlay    func(r *Renderer, ctx context.Context, ps, region, proj, suppFile string) error
}

// render runs the fixed pipeline: defaults, basemap, palette, surface
// interpolation, image, optional overlay, marker, optional colorbar,
// title, format conversion, cleanup. The first failing toolkit call
// aborts the run.
func (r *Renderer) render(ctx context.Context, p Params, k kind) (out string, err error) {
	tbl, err := table.Read(p.DataFile)
	if err != nil {
		return "", err
	}
	xs, ys, _ := tbl.Columns()
	ax, err := axes.Derive(xs, ys)
	if err != nil {
		return "", err
	}

	dataFile, err := filepath.Abs(p.DataFile)
	if err != nil {
		return "", err
	}
	outBase, err := filepath.Abs(p.Filename)
	if err != nil {
		return "", err
	}

	sess, err := gmt.NewSession(r.Run, r.KeepTemp)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := sess.Close(); cerr != nil {
			err = multierror.Append(err, cerr).ErrorOrNil()
		}
	}()

	if err := sess.ApplyDefaults(ctx, r.Cfg); err != nil {
		return "", err
	}

	ps := sess.TempFile(".ps")
	cpt := sess.TempFile(".cpt")
	grd := sess.TempFile(".grd")

	region := regionFlag(ax)
	proj := k.projection

	r.Log.Info("rendering figure",
		zap.String("kind", k.name),
		zap.String("data", p.DataFile),
		zap.String("region", region))

	// basemap
	args := []string{"psbasemap", region, proj}
	args = append(args, frameFlags(ax, k.xLabel, k.yLabel)...)
	args = append(args, "-K")
	if err := r.Run.RunTo(ctx, ps, false, args...); err != nil {
		return "", err
	}

	// color palette
	cptArgs := []string{"makecpt", "-C" + p.CPTName,
		fmt.Sprintf("-T%g/%g/%g", p.ZMin, p.ZMax, p.CPTStep), "-D"}
	if p.FlipCPT {
		cptArgs = append(cptArgs, "-I")
	}
	if err := r.Run.RunTo(ctx, cpt, false, cptArgs...); err != nil {
		return "", err
	}

	// surface interpolation onto a temp grid, then image render
	inc := fmt.Sprintf("-I%g/%g",
		ax.X.Span()/float64(r.Cfg.GridDensity),
		ax.Y.Span()/float64(r.Cfg.GridDensity))
	if err := r.Run.Run(ctx, "surface", dataFile, region, inc, "-G"+grd); err != nil {
		return "", err
	}
	if err := r.Run.RunTo(ctx, ps, true,
		"grdimage", grd, region, proj, "-C"+cpt, "-O", "-K"); err != nil {
		return "", err
	}

	if k.arcs {
		arcs := referenceArcs(ax, []float64{30, 60, 90, 120, 150})
		if err := r.Run.RunStdin(ctx, arcs, ps,
			"psxy", region, proj, "-W0.75p,gray,--", "-O", "-K"); err != nil {
			return "", err
		}
	}

	// best-source overlay
	if p.SupplementalFile != "" && fileExists(p.SupplementalFile) {
		suppFile, err := filepath.Abs(p.SupplementalFile)
		if err != nil {
			return "", err
		}
		if err := k.overlay(r, ctx, ps, region, proj, suppFile); err != nil {
			return "", err
		}
	}

	if err := r.drawMarker(ctx, ps, region, proj, p, tbl); err != nil {
		return "", err
	}

	if p.ColorbarType != 0 {
		annot := colorbarAnnotation(p.ZMin, p.ZMax, p.ColorbarLabel, p.ZExp)
		if err := r.Run.RunTo(ctx, ps, true,
			"psscale", "-C"+cpt,
			"-Dx0.5i/-0.8i+w5i/0.2i+h", annot, "-O", "-K"); err != nil {
			return "", err
		}
	}

	if text := titleLines(p.Title, p.Subtitle); text != "" {
		if err := r.Run.RunStdin(ctx, text, ps,
			"pstext", "-R0/1/0/1", "-JX"+r.Cfg.MapWidth,
			"-F+f"+r.Cfg.FontTitle+"+jCB", "-N", "-O", "-K"); err != nil {
			return "", err
		}
	}

	// terminate the PostScript layer stack
	if err := r.Run.RunTo(ctx, ps, true, "psxy", region, proj, "-T", "-O"); err != nil {
		return "", err
	}

	return r.convert(ctx, ps, outBase, p.Filetype)
}

// drawMarker plots either the coordinates file, when one exists, or a
// symbol at the best-fitting (minimum-value) sample per the marker
// type code.
func (r *Renderer) drawMarker(ctx context.Context, ps, region, proj string, p Params, tbl *table.Table) error {
	if p.MarkerCoords != "" && fileExists(p.MarkerCoords) {
		coordsFile, err := filepath.Abs(p.MarkerCoords)
		if err != nil {
			return err
		}
		return r.Run.RunTo(ctx, ps, true,
			"psxy", coordsFile, region, proj,
			"-Sc"+r.Cfg.MarkerSize, "-W1p,black", "-Gwhite", "-O", "-K")
	}

	symbol, ok := markerSymbol(p.MarkerType, r.Cfg.MarkerSize)
	if !ok {
		return nil
	}
	best := tbl.Best()
	return r.Run.RunStdin(ctx, fmt.Sprintf("%g %g\n", best.X, best.Y), ps,
		"psxy", region, proj, symbol, "-W1p,black", "-Gwhite", "-O", "-K")
}

// convert turns the layered PostScript into the requested filetype.
// PS output skips psconvert and copies the file out.
func (r *Renderer) convert(ctx context.Context, ps, outBase, filetype string) (string, error) {
	out := outBase + "." + outputExtension(filetype)

	if filetype == "PS" {
		if r.Run.DryRun {
			r.Run.Recorded = append(r.Run.Recorded, fmt.Sprintf("cp %s %s", ps, out))
			return out, nil
		}
		if err := copyFile(ps, out); err != nil {
			return "", err
		}
		return out, nil
	}

	code, err := formatCode(filetype)
	if err != nil {
		return "", err
	}
	if err := r.Run.Run(ctx, "psconvert", ps, "-A", "-T"+code, "-F"+outBase); err != nil {
		return "", err
	}
	return out, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy %s: %w", dst, err)
	}
	return out.Close()
}
