package main

import "github.com/spf13/cobra"

var latlonCmd = &cobra.Command{
	Use:   "latlon <filename> <filetype> <data> <supplemental> <zmin> <zmax> <zexp> <cptstep> <cptname> <flip> <cbartype> <cbarlabel> <marker-coords> <marker-type> <title> <subtitle>",
	Short: "Render a lat/lon misfit map",
	Long: `Renders misfit values over a geographic grid: an interpolated misfit
surface with derived axis bounds and ticks, an optional focal-mechanism
overlay from the supplemental table, an optional colorbar, and a marker
at the best-fitting epicenter.`,
	Args: cobra.ExactArgs(16),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFigure(latlonKind, args)
	},
}

func init() {
	// Negative numeric arguments (zmin, exponent, marker type) must not
	// be parsed as flags, so flags are only accepted before positionals.
	latlonCmd.Flags().SetInterspersed(false)
}
