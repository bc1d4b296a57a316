// Package cli wires the velograph command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/velograph/velograph/pkg/config"
)

var rootCmd = &cobra.Command{
	Use:   "velograph",
	Short: "Strava commute statistics and visualizations",
	Long: `velograph pulls your Strava activity history, derives commute legs,
computes per-direction statistics for a cutoff year, and renders a text
report plus static and interactive charts.`,
	SilenceUsage: true,
}

var rootFlags struct {
	year      int
	dataFile  string
	outputDir string
	policy    string
	boundary  int
	timezone  string
	cacheDir  string
	noCache   bool
	verbose   bool
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&rootFlags.year, "year", 0, "cutoff year (or set VELOGRAPH_YEAR; default: current year)")
	pf.StringVar(&rootFlags.dataFile, "data", "", "activity record file (or set VELOGRAPH_DATA_FILE)")
	pf.StringVar(&rootFlags.outputDir, "output", "", "output directory for artifacts (or set VELOGRAPH_OUTPUT_DIR)")
	pf.StringVar(&rootFlags.policy, "policy", "", "direction policy: clock or name (or set VELOGRAPH_DIRECTION_POLICY)")
	pf.IntVar(&rootFlags.boundary, "boundary", 0, "to-work boundary hour for the clock policy (or set VELOGRAPH_NOON_BOUNDARY)")
	pf.StringVar(&rootFlags.timezone, "timezone", "", "fallback IANA zone for records without a local stamp (or set VELOGRAPH_TIMEZONE)")
	pf.StringVar(&rootFlags.cacheDir, "cache-dir", "", "HTTP response cache directory (or set VELOGRAPH_CACHE_DIR)")
	pf.BoolVar(&rootFlags.noCache, "no-cache", false, "disable HTTP response caching")
	pf.BoolVar(&rootFlags.verbose, "verbose", false, "enable verbose logging")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(chartsCmd)
	rootCmd.AddCommand(wrappedCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads env config, applies flag overrides, and builds the logger.
func setup() (*config.Config, *slog.Logger, error) {
	level := slog.LevelError
	if rootFlags.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	if rootFlags.year != 0 {
		cfg.Year = rootFlags.year
	}
	if rootFlags.dataFile != "" {
		cfg.DataFile = rootFlags.dataFile
	}
	if rootFlags.outputDir != "" {
		cfg.OutputDir = rootFlags.outputDir
	}
	if rootFlags.policy != "" {
		cfg.DirectionPolicy = rootFlags.policy
	}
	if rootFlags.boundary != 0 {
		cfg.NoonBoundary = rootFlags.boundary
	}
	if rootFlags.timezone != "" {
		cfg.Timezone = rootFlags.timezone
	}
	if rootFlags.cacheDir != "" {
		cfg.CacheDir = rootFlags.cacheDir
	}
	if rootFlags.noCache {
		cfg.CacheDir = ""
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "velograph v1.2.0")
	},
}
