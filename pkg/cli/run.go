package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/velograph/velograph/pkg/charts"
	"github.com/velograph/velograph/pkg/wrapped"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: fetch, analyze, charts, wrapped",
	Long: `Run executes the whole weekly pipeline in order. A fetch failure is
fatal (the previous record set stays untouched); renderers fail
independently so one broken artifact doesn't block the rest.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		if err := runFetch(cmd.Context(), cfg, logger); err != nil {
			return err
		}

		var errs []error
		if err := runAnalyze(cfg, logger); err != nil {
			logger.Error("analysis failed", "error", err)
			errs = append(errs, fmt.Errorf("analyze: %w", err))
		}

		activities, err := loadActivities(cfg, logger)
		if err != nil {
			errs = append(errs, err)
			return errors.Join(errs...)
		}

		if err := charts.RenderAll(activities, cfg.Timezone, cfg.OutputDir, logger); err != nil {
			errs = append(errs, fmt.Errorf("charts: %w", err))
		}
		if err := wrapped.WriteFiles(activities, cfg.OutputDir, cfg.Timezone, logger); err != nil {
			errs = append(errs, fmt.Errorf("wrapped: %w", err))
		}

		return errors.Join(errs...)
	},
}
