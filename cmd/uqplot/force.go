package main

import "github.com/spf13/cobra"

var forceCmd = &cobra.Command{
	Use:   "force <filename> <filetype> <data> <supplemental> <zmin> <zmax> <zexp> <cptstep> <cptname> <flip> <cbartype> <cbarlabel> <marker-coords> <marker-type> <title> <subtitle>",
	Short: "Render a force-orientation map",
	Long: `Renders misfit values over source azimuth and cos(takeoff): an
interpolated misfit surface with reference arcs at fixed takeoff
angles, an optional best-orientation overlay from the supplemental
table, an optional colorbar, and a marker at the best-fitting
orientation.`,
	Args: cobra.ExactArgs(16),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFigure(forceKind, args)
	},
}

func init() {
	forceCmd.Flags().SetInterspersed(false)
}
