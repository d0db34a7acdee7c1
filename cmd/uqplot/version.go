package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quakelab/uqplot/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("uqplot %s (%s, built %s)\n",
			version.Version, version.GitSHA, version.BuildTime)
	},
}
