package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/velograph/velograph/pkg/charts"
)

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Render static and interactive chart artifacts",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		activities, err := loadActivities(cfg, logger)
		if err != nil {
			return err
		}

		if err := charts.RenderAll(activities, cfg.Timezone, cfg.OutputDir, logger); err != nil {
			return fmt.Errorf("rendering charts: %w", err)
		}

		fmt.Printf("Charts written to %s\n", cfg.OutputDir)
		return nil
	},
}
