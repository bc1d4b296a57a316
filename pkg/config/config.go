// Package config loads runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Direction policies for classifying commute legs.
const (
	PolicyClock = "clock" // bucket by local departure hour vs NoonBoundary
	PolicyName  = "name"  // bucket by "to work"/"from work" tag in the name
)

// Config holds all runtime settings. Credentials come from the environment
// only and are never written anywhere.
type Config struct {
	ClientID     string `env:"STRAVA_CLIENT_ID"`
	ClientSecret string `env:"STRAVA_CLIENT_SECRET"`
	RefreshToken string `env:"STRAVA_REFRESH_TOKEN"`

	Year            int    `env:"VELOGRAPH_YEAR" env-default:"0"`
	DataFile        string `env:"VELOGRAPH_DATA_FILE" env-default:"data/activities.json"`
	OutputDir       string `env:"VELOGRAPH_OUTPUT_DIR" env-default:"output"`
	NoonBoundary    int    `env:"VELOGRAPH_NOON_BOUNDARY" env-default:"12"`
	DirectionPolicy string `env:"VELOGRAPH_DIRECTION_POLICY" env-default:"clock"`
	Timezone        string `env:"VELOGRAPH_TIMEZONE" env-default:"America/Los_Angeles"`
	CacheDir        string `env:"VELOGRAPH_CACHE_DIR"`
}

// Load reads configuration from the environment with defaults applied.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if cfg.Year == 0 {
		cfg.Year = time.Now().Year()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks the non-credential settings. Credentials are only
// required by the fetch path and are checked there.
func (c *Config) Validate() error {
	if c.NoonBoundary < 1 || c.NoonBoundary > 23 {
		return fmt.Errorf("noon boundary %d out of range 1..23", c.NoonBoundary)
	}
	if c.DirectionPolicy != PolicyClock && c.DirectionPolicy != PolicyName {
		return fmt.Errorf("unknown direction policy %q", c.DirectionPolicy)
	}
	if c.Year < 2000 || c.Year > 2100 {
		return fmt.Errorf("cutoff year %d out of range", c.Year)
	}
	return nil
}

// RequireCredentials returns an error when any Strava secret is missing.
func (c *Config) RequireCredentials() error {
	if c.ClientID == "" || c.ClientSecret == "" || c.RefreshToken == "" {
		return errors.New("STRAVA_CLIENT_ID, STRAVA_CLIENT_SECRET and STRAVA_REFRESH_TOKEN must be set")
	}
	return nil
}
