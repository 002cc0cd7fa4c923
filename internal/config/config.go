// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	score "github.com/jhartmann/carwatch/pkg/scorer"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// ScoringConfig defines the cohort and overlay calibration. Changing any of
// these should be accompanied by a new version string, since the constants are
// persisted with every score.
type ScoringConfig struct {
	Version         string                        `yaml:"version"`
	MinCohortSize   int                           `yaml:"min_cohort_size"`
	MileageWindowKM int                           `yaml:"mileage_window_km"`
	YearWindow      int                           `yaml:"year_window"`
	Overlays        map[string]map[string]float64 `yaml:"overlays"`
	Tiers           []score.Tier                  `yaml:"tiers"`
}

// Params converts the configuration into scoring parameters.
func (s *ScoringConfig) Params() score.Params {
	return score.Params{
		MinCohortSize:   s.MinCohortSize,
		MileageWindowKM: s.MileageWindowKM,
		YearWindow:      s.YearWindow,
		Version:         s.Version,
	}
}

// OverlayTable returns the configured overlay weights.
func (s *ScoringConfig) OverlayTable() score.OverlayTable {
	if s.Overlays == nil {
		return score.DefaultOverlays()
	}
	return score.OverlayTable(s.Overlays)
}

// TierList returns the configured tier thresholds.
func (s *ScoringConfig) TierList() []score.Tier {
	if len(s.Tiers) == 0 {
		return score.DefaultTiers()
	}
	return s.Tiers
}

// ScheduleConfig defines cron intervals for the background jobs.
type ScheduleConfig struct {
	ScoringInterval    time.Duration `yaml:"scoring_interval"`
	DeactivateInterval time.Duration `yaml:"deactivate_interval"`
	DeactivateAfter    time.Duration `yaml:"deactivate_after"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyScoringDefaults(&cfg.Scoring)
	applyScheduleDefaults(&cfg.Schedule)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyScoringDefaults(s *ScoringConfig) {
	def := score.DefaultParams()
	if s.Version == "" {
		s.Version = def.Version
	}
	if s.MinCohortSize == 0 {
		s.MinCohortSize = def.MinCohortSize
	}
	if s.MileageWindowKM == 0 {
		s.MileageWindowKM = def.MileageWindowKM
	}
	if s.YearWindow == 0 {
		s.YearWindow = def.YearWindow
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.ScoringInterval == 0 {
		s.ScoringInterval = 6 * time.Hour
	}
	if s.DeactivateInterval == 0 {
		s.DeactivateInterval = 24 * time.Hour
	}
	if s.DeactivateAfter == 0 {
		s.DeactivateAfter = 72 * time.Hour
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	// Scores from one or two peers are noise; 3 is the smallest cohort
	// worth calling a market.
	if cfg.Scoring.MinCohortSize < 3 {
		errs = append(errs, fmt.Errorf("scoring.min_cohort_size must be at least 3"))
	}
	if cfg.Scoring.MileageWindowKM < 0 {
		errs = append(errs, fmt.Errorf("scoring.mileage_window_km must not be negative"))
	}
	if cfg.Scoring.YearWindow < 0 {
		errs = append(errs, fmt.Errorf("scoring.year_window must not be negative"))
	}

	if err := cfg.Scoring.OverlayTable().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("scoring.overlays: %w", err))
	}
	if err := score.ValidateTiers(cfg.Scoring.TierList()); err != nil {
		errs = append(errs, fmt.Errorf("scoring.tiers: %w", err))
	}

	return errors.Join(errs...)
}
