// uqplot renders seismic-source uncertainty figures by orchestrating
// the external GMT toolkit: lat/lon misfit maps and force-orientation
// maps driven by sixteen positional arguments apiece.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Persistent flags
	configPath  string
	gmtBin      string
	outDir      string
	catalogPath string
	dryRun      bool
	keepTemp    bool
	verbose     bool
	withPreview bool
	withHTML    bool
	watchInputs bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "uqplot",
	Short: "Render seismic-source uncertainty figures via GMT",
	Long: `uqplot renders uncertainty-quantification figures for seismic source
studies: lat/lon misfit maps and force-orientation maps. Axis ranges and
tick spacing are derived from the input table; all interpolation,
contouring and color mapping is delegated to the GMT toolkit.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML defaults file")
	pf.StringVar(&gmtBin, "gmt-bin", "", "GMT binary (overrides config)")
	pf.StringVar(&outDir, "out-dir", "", "directory for output files")
	pf.StringVar(&catalogPath, "catalog", "", "SQLite figure catalog (empty disables)")
	pf.BoolVar(&dryRun, "dry-run", false, "print the GMT pipeline without executing")
	pf.BoolVar(&keepTemp, "keep-temp", false, "keep the session scratch directory")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.BoolVar(&withPreview, "preview", false, "also render a native PNG preview")
	pf.BoolVar(&withHTML, "html", false, "also write an HTML heatmap report")
	pf.BoolVar(&watchInputs, "watch", false, "re-render when input tables change")

	rootCmd.AddCommand(latlonCmd, forceCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
