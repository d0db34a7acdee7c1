package figure

import "context"

// LatLon renders a lat/lon misfit map: an interpolated misfit surface
// over a geographic region, with the best-fitting focal mechanisms
// overlaid when a supplemental table is present.
func (r *Renderer) LatLon(ctx context.Context, p Params) (string, error) {
	k := kind{
		name:       "latlon",
		projection: "-JM" + r.Cfg.MapWidth,
		xLabel:     "Longitude",
		yLabel:     "Latitude",
		overlay:    overlayMechanisms,
	}
	return r.render(ctx, p, k)
}

// overlayMechanisms draws focal-mechanism symbols from a supplemental
// table of moment-tensor rows.
func overlayMechanisms(r *Renderer, ctx context.Context, ps, region, proj, suppFile string) error {
	return r.Run.RunTo(ctx, ps, true,
		"psmeca", suppFile, region, proj, "-Sm0.4i", "-Gdarkred", "-O", "-K")
}
