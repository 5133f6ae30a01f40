package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"blendfolio/types"
)

// CatalogEntry describes one built-in strategy source.
type CatalogEntry struct {
	ID      string  `yaml:"id"`
	Name    string  `yaml:"name"`
	Color   string  `yaml:"color"`
	URL     string  `yaml:"url"`
	Price   float64 `yaml:"price"`
	InfoURL string  `yaml:"info_url"`
}

// StressWindowEntry is a configured stress window; when none are
// configured the engine's built-in historical windows apply.
type StressWindowEntry struct {
	Name  string `yaml:"name"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Config holds all application configuration.
type Config struct {
	Catalog   []CatalogEntry `yaml:"catalog"`
	Benchmark struct {
		URL string `yaml:"url"`
	} `yaml:"benchmark"`
	Portfolio struct {
		InitialBalance        float64            `yaml:"initial_balance"`
		ContributionAmount    float64            `yaml:"contribution_amount"`
		ContributionFrequency string             `yaml:"contribution_frequency"`
		Allocations           map[string]float64 `yaml:"allocations"`
	} `yaml:"portfolio"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	StressWindows []StressWindowEntry `yaml:"stress_windows"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; the defaults
// still apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("BENCHMARK_URL"); v != "" {
		cfg.Benchmark.URL = v
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("INITIAL_BALANCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Portfolio.InitialBalance = f
		}
	}

	// Defaults
	if cfg.Portfolio.InitialBalance == 0 {
		cfg.Portfolio.InitialBalance = 100000
	}
	if cfg.Portfolio.ContributionFrequency == "" {
		cfg.Portfolio.ContributionFrequency = string(types.Monthly)
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 6 * * *"
	}

	return cfg, nil
}

// Validate checks that the configuration can drive a simulation.
func (c *Config) Validate() error {
	if c.Portfolio.InitialBalance < 0 {
		return fmt.Errorf("portfolio.initial_balance must not be negative")
	}
	if !types.Frequency(c.Portfolio.ContributionFrequency).Valid() {
		return fmt.Errorf("portfolio.contribution_frequency %q is not one of monthly, quarterly, semi-annually, annually", c.Portfolio.ContributionFrequency)
	}
	for id, pct := range c.Portfolio.Allocations {
		if pct < 0 || pct > 100 {
			return fmt.Errorf("portfolio.allocations[%s] = %v, must be in [0,100]", id, pct)
		}
	}
	seen := map[string]bool{}
	for _, e := range c.Catalog {
		if e.ID == "" {
			return fmt.Errorf("catalog entry %q is missing an id", e.Name)
		}
		if seen[e.ID] {
			return fmt.Errorf("catalog id %q is duplicated", e.ID)
		}
		seen[e.ID] = true
		if e.URL == "" && c.Database.URL == "" {
			return fmt.Errorf("catalog entry %q has no url and no database is configured", e.ID)
		}
	}
	for _, w := range c.StressWindows {
		if _, ok := types.Day(w.Start).Time(); !ok {
			return fmt.Errorf("stress window %q start %q is not YYYY-MM-DD", w.Name, w.Start)
		}
		if _, ok := types.Day(w.End).Time(); !ok {
			return fmt.Errorf("stress window %q end %q is not YYYY-MM-DD", w.Name, w.End)
		}
		if w.Start > w.End {
			return fmt.Errorf("stress window %q starts after it ends", w.Name)
		}
	}
	return nil
}

// Settings converts the portfolio section into engine settings.
func (c *Config) Settings() types.Settings {
	return types.Settings{
		InitialBalance:        c.Portfolio.InitialBalance,
		ContributionAmount:    c.Portfolio.ContributionAmount,
		ContributionFrequency: types.Frequency(c.Portfolio.ContributionFrequency),
	}
}

// Windows converts configured stress windows; nil when none are set, so
// callers fall back to the engine defaults.
func (c *Config) Windows() []types.StressWindow {
	if len(c.StressWindows) == 0 {
		return nil
	}
	out := make([]types.StressWindow, 0, len(c.StressWindows))
	for _, w := range c.StressWindows {
		out = append(out, types.StressWindow{Name: w.Name, Start: types.Day(w.Start), End: types.Day(w.End)})
	}
	return out
}
