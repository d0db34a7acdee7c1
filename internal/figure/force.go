package figure

import "context"

// Force renders a force-orientation map: misfit over source azimuth
// and cos(takeoff), with reference arcs at fixed takeoff angles and
// the best-fitting orientations overlaid when a supplemental table is
// present.
func (r *Renderer) Force(ctx context.Context, p Params) (string, error) {
	k := kind{
		name:       "force",
		projection: "-JX" + r.Cfg.MapWidth,
		xLabel:     "Azimuth",
		yLabel:     "cos(takeoff)",
		arcs:       true,
		overlay:    overlayOrientations,
	}
	return r.render(ctx, p, k)
}

// overlayOrientations draws direction vectors from a supplemental
// table of (azimuth, h, direction, length) rows.
func overlayOrientations(r *Renderer, ctx context.Context, ps, region, proj, suppFile string) error {
	return r.Run.RunTo(ctx, ps, true,
		"psxy", suppFile, region, proj, "-SV0.15i+e", "-Gblack", "-W1p,black", "-O", "-K")
}
