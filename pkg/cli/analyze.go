package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/velograph/velograph/pkg/activity"
	"github.com/velograph/velograph/pkg/commute"
	"github.com/velograph/velograph/pkg/config"
	"github.com/velograph/velograph/pkg/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Classify commutes, aggregate statistics, and write the text report",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		return runAnalyze(cfg, logger)
	},
}

// loadActivities loads the persisted record set, with a friendlier error
// when no fetch has happened yet.
func loadActivities(cfg *config.Config, logger *slog.Logger) ([]activity.Activity, error) {
	store := activity.NewStore(cfg.DataFile, logger)
	if !store.Exists() {
		return nil, fmt.Errorf("no activity data at %s; run `velograph fetch` first", cfg.DataFile)
	}
	activities, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading activities: %w", err)
	}
	return activities, nil
}

func runAnalyze(cfg *config.Config, logger *slog.Logger) error {
	activities, err := loadActivities(cfg, logger)
	if err != nil {
		return err
	}

	policy := commute.Policy{
		CutoffYear:   cfg.Year,
		NoonBoundary: cfg.NoonBoundary,
		UseNameTag:   cfg.DirectionPolicy == config.PolicyName,
		FallbackZone: cfg.Timezone,
	}

	toWork, fromWork := commute.Classify(activities, policy)
	result := commute.Aggregate(toWork, fromWork, cfg.Year)

	path, err := report.WriteFile(result, cfg.OutputDir, logger)
	if err != nil {
		return err
	}

	legs := make([]commute.Leg, 0, len(toWork)+len(fromWork))
	legs = append(legs, toWork...)
	legs = append(legs, fromWork...)
	report.PrintTerminal(os.Stdout, result, legs)

	fmt.Printf("Analysis saved to %s\n", path)
	return nil
}
