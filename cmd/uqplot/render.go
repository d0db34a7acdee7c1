package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/quakelab/uqplot/internal/axes"
	"github.com/quakelab/uqplot/internal/catalog"
	"github.com/quakelab/uqplot/internal/config"
	"github.com/quakelab/uqplot/internal/figure"
	"github.com/quakelab/uqplot/internal/gmt"
	"github.com/quakelab/uqplot/internal/preview"
	"github.com/quakelab/uqplot/internal/report"
	"github.com/quakelab/uqplot/internal/table"
	"github.com/quakelab/uqplot/internal/watch"
)

// figureKind selects which pipeline a command drives.
type figureKind struct {
	name   string
	xLabel string
	yLabel string
	render func(r *figure.Renderer, ctx context.Context, p figure.Params) (string, error)
}

var latlonKind = figureKind{
	name:   "latlon",
	xLabel: "Longitude",
	yLabel: "Latitude",
	render: (*figure.Renderer).LatLon,
}

var forceKind = figureKind{
	name:   "force",
	xLabel: "Azimuth",
	yLabel: "cos(takeoff)",
	render: (*figure.Renderer).Force,
}

// runFigure is the shared RunE body for the latlon and force commands:
// decode the sixteen positional arguments, render once, then handle
// the opt-in extras (preview, HTML report, catalog, watch mode).
func runFigure(kind figureKind, args []string) error {
	p, err := figure.ParseArgs(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if gmtBin != "" {
		cfg.GMTBin = gmtBin
	}
	if outDir != "" {
		p.Filename = filepath.Join(outDir, p.Filename)
	}

	ctx := context.Background()

	render := func() error {
		run := gmt.NewRunner(cfg.GMTBin, logger)
		run.DryRun = dryRun

		r := figure.NewRenderer(run, cfg, logger)
		r.KeepTemp = keepTemp

		start := time.Now()
		out, err := kind.render(r, ctx, p)
		if err != nil {
			return err
		}
		logger.Info("figure written",
			zap.String("output", out),
			zap.Duration("elapsed", time.Since(start)))

		if err := writeExtras(kind, p, out); err != nil {
			return err
		}
		if catalogPath != "" && !dryRun {
			if err := recordFigure(kind, p, out, time.Since(start)); err != nil {
				return err
			}
		}
		return nil
	}

	if err := render(); err != nil {
		return err
	}

	if watchInputs {
		inputs := []string{p.DataFile, p.SupplementalFile}
		return watch.Files(ctx, logger, inputs, render)
	}
	return nil
}

// writeExtras renders the optional native preview and HTML report next
// to the toolkit output.
func writeExtras(kind figureKind, p figure.Params, out string) error {
	if !withPreview && !withHTML {
		return nil
	}

	tbl, err := table.Read(p.DataFile)
	if err != nil {
		return err
	}

	if withPreview {
		path := p.Filename + "_preview.png"
		if err := preview.Render(tbl, p.Title, kind.xLabel, kind.yLabel, path); err != nil {
			return fmt.Errorf("preview: %w", err)
		}
		logger.Info("preview written", zap.String("output", path))
	}
	if withHTML {
		path := p.Filename + ".html"
		if err := report.Write(tbl, p.Title, p.Subtitle, kind.xLabel, kind.yLabel, path); err != nil {
			return fmt.Errorf("html report: %w", err)
		}
		logger.Info("report written", zap.String("output", path))
	}
	return nil
}

// recordFigure appends one entry to the SQLite catalog.
func recordFigure(kind figureKind, p figure.Params, out string, elapsed time.Duration) error {
	tbl, err := table.Read(p.DataFile)
	if err != nil {
		return err
	}
	xs, ys, _ := tbl.Columns()
	ax, err := axes.Derive(xs, ys)
	if err != nil {
		return err
	}

	cat, err := catalog.Open(catalogPath)
	if err != nil {
		return err
	}
	defer cat.Close()

	return cat.Record(&catalog.Entry{
		Kind:       kind.name,
		Output:     out,
		DataFile:   p.DataFile,
		XMin:       ax.X.Min,
		XMax:       ax.X.Max,
		YMin:       ax.Y.Min,
		YMax:       ax.Y.Max,
		DurationMS: elapsed.Milliseconds(),
	})
}
