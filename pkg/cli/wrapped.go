package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/velograph/velograph/pkg/wrapped"
)

var wrappedCmd = &cobra.Command{
	Use:   "wrapped",
	Short: "Render the lifetime Wrapped summary",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		activities, err := loadActivities(cfg, logger)
		if err != nil {
			return err
		}

		if err := wrapped.WriteFiles(activities, cfg.OutputDir, cfg.Timezone, logger); err != nil {
			return fmt.Errorf("rendering wrapped summary: %w", err)
		}

		s, err := wrapped.Summarize(activities)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), wrapped.Render(s))
		return nil
	},
}
