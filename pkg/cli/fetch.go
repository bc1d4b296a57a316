package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/velograph/velograph/pkg/activity"
	"github.com/velograph/velograph/pkg/config"
	"github.com/velograph/velograph/pkg/httpcache"
	"github.com/velograph/velograph/pkg/strava"
)

const fetchTimeout = 10 * time.Minute

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the full activity history from Strava and persist it",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		return runFetch(cmd.Context(), cfg, logger)
	},
}

func runFetch(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if err := cfg.RequireCredentials(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	httpClient := &http.Client{Timeout: 60 * time.Second}
	if cfg.CacheDir != "" {
		cache, err := httpcache.New(cfg.CacheDir, 6*time.Hour, logger)
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		defer func() {
			if err := cache.Close(); err != nil {
				logger.Error("failed to close cache", "error", err)
			}
		}()
		httpClient.Transport = &httpcache.Transport{Cache: cache, Logger: logger}
	}

	client := strava.NewClient(logger, cfg.ClientID, cfg.ClientSecret, cfg.RefreshToken,
		strava.WithHTTPClient(httpClient))

	activities, err := client.FetchActivities(ctx)
	if err != nil {
		return fmt.Errorf("fetching activities: %w", err)
	}

	store := activity.NewStore(cfg.DataFile, logger)
	if err := store.Save(activities); err != nil {
		return fmt.Errorf("saving activities: %w", err)
	}

	fmt.Printf("Fetched %d activities into %s\n", len(activities), cfg.DataFile)
	return nil
}
