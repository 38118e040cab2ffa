package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for jobpilot.
type Config struct {
	PollingInterval time.Duration
	Searches        []SearchConfig
	Filters         FilterConfig
	Notification    NotificationConfig
	RateLimit       RateLimitConfig
	Store           StoreConfig
	CI              CIConfig
}

// SearchConfig describes a single saved search to poll.
type SearchConfig struct {
	Name     string `yaml:"name"`
	Keywords string `yaml:"keywords"`
	Location string `yaml:"location"`
	Limit    int    `yaml:"limit"`
	Details  bool   `yaml:"details"` // scrape the view page of each new job
	Enabled  bool   `yaml:"enabled"`
}

// FilterConfig holds keyword and location filter settings.
type FilterConfig struct {
	TitleKeywords        []string
	TitleExcludeKeywords []string
	Locations            []string
	ExcludeLocations     []string
}

// NotificationConfig controls which notifier is used and its settings.
type NotificationConfig struct {
	Type       string `yaml:"type"`        // "log" or "slack"
	WebhookURL string `yaml:"webhook_url"` // required if type is "slack"
}

// RateLimitConfig controls source-level rate limiting.
type RateLimitConfig struct {
	MinDelay time.Duration // minimum gap between scrapes of the same source
}

// StoreConfig controls the SQLite job store.
type StoreConfig struct {
	Path      string        // database file path
	Retention time.Duration // how long seen jobs are kept for dedup/browsing
}

// CIConfig declares the repository automation workflows.
type CIConfig struct {
	Runtime    string       // pinned runtime version the toolchain expects
	MainBranch string       // branch whose pushes and PRs gate merges
	Hooks      []HookConfig // ordered quality-gate hooks
	Build      string       // release build command
	Publish    string       // release publish command
	TokenEnv   string       // env var holding the package-index token
}

// HookConfig is a single quality-gate check command.
type HookConfig struct {
	Name string `yaml:"name"`
	Run  string `yaml:"run"`
}

const (
	defaultPollingInterval = 30 * time.Minute
	defaultRateLimitDelay  = 2 * time.Second
	defaultStorePath       = "jobs.db"
	defaultRetention       = 30 * 24 * time.Hour
	defaultRuntime         = "3.11"
	defaultMainBranch      = "main"
	defaultTokenEnv        = "PYPI_TOKEN"
)

// rawConfig is used for YAML unmarshaling (snake_case fields and duration as string).
type rawConfig struct {
	PollingInterval string             `yaml:"polling_interval"`
	Searches        []SearchConfig     `yaml:"searches"`
	Filters         rawFilterConfig    `yaml:"filters"`
	Notification    NotificationConfig `yaml:"notification"`
	RateLimit       rawRateLimitConfig `yaml:"rate_limit"`
	Store           rawStoreConfig     `yaml:"store"`
	CI              rawCIConfig        `yaml:"ci"`
}

type rawFilterConfig struct {
	TitleKeywords        []string `yaml:"title_keywords"`
	TitleExcludeKeywords []string `yaml:"title_exclude_keywords"`
	Locations            []string `yaml:"locations"`
	ExcludeLocations     []string `yaml:"exclude_locations"`
}

type rawRateLimitConfig struct {
	MinDelay string `yaml:"min_delay"`
}

type rawStoreConfig struct {
	Path      string `yaml:"path"`
	Retention string `yaml:"retention"`
}

type rawCIConfig struct {
	Runtime    string       `yaml:"runtime"`
	MainBranch string       `yaml:"main_branch"`
	Hooks      []HookConfig `yaml:"hooks"`
	Build      string       `yaml:"build"`
	Publish    string       `yaml:"publish"`
	TokenEnv   string       `yaml:"token_env"`
}

// Load reads and parses the YAML config file at path, validates it, and returns Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	interval := defaultPollingInterval
	if raw.PollingInterval != "" {
		interval, err = time.ParseDuration(raw.PollingInterval)
		if err != nil {
			return nil, fmt.Errorf("parse polling_interval %q: %w", raw.PollingInterval, err)
		}
	}

	minDelay := defaultRateLimitDelay
	if raw.RateLimit.MinDelay != "" {
		minDelay, err = time.ParseDuration(raw.RateLimit.MinDelay)
		if err != nil {
			return nil, fmt.Errorf("parse rate_limit.min_delay %q: %w", raw.RateLimit.MinDelay, err)
		}
	}

	storePath := raw.Store.Path
	if storePath == "" {
		storePath = defaultStorePath
	}
	retention := defaultRetention
	if raw.Store.Retention != "" {
		retention, err = time.ParseDuration(raw.Store.Retention)
		if err != nil {
			return nil, fmt.Errorf("parse store.retention %q: %w", raw.Store.Retention, err)
		}
	}

	ci := CIConfig{
		Runtime:    raw.CI.Runtime,
		MainBranch: raw.CI.MainBranch,
		Hooks:      raw.CI.Hooks,
		Build:      raw.CI.Build,
		Publish:    raw.CI.Publish,
		TokenEnv:   raw.CI.TokenEnv,
	}
	if ci.Runtime == "" {
		ci.Runtime = defaultRuntime
	}
	if ci.MainBranch == "" {
		ci.MainBranch = defaultMainBranch
	}
	if ci.TokenEnv == "" {
		ci.TokenEnv = defaultTokenEnv
	}

	cfg := &Config{
		PollingInterval: interval,
		Searches:        raw.Searches,
		Filters: FilterConfig{
			TitleKeywords:        raw.Filters.TitleKeywords,
			TitleExcludeKeywords: raw.Filters.TitleExcludeKeywords,
			Locations:            raw.Filters.Locations,
			ExcludeLocations:     raw.Filters.ExcludeLocations,
		},
		Notification: raw.Notification,
		RateLimit:    RateLimitConfig{MinDelay: minDelay},
		Store:        StoreConfig{Path: storePath, Retention: retention},
		CI:           ci,
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.PollingInterval <= 0 {
		return fmt.Errorf("polling_interval must be positive, got %v", cfg.PollingInterval)
	}

	for i, s := range cfg.Searches {
		if s.Keywords == "" {
			return fmt.Errorf("searches[%d]: keywords are required", i)
		}
		if s.Location == "" {
			return fmt.Errorf("searches[%d]: location is required", i)
		}
		if s.Limit < 0 || s.Limit > 1000 {
			return fmt.Errorf("searches[%d]: limit must be between 0 and 1000, got %d", i, s.Limit)
		}
	}

	if cfg.Store.Retention < time.Hour {
		return fmt.Errorf("store.retention must be at least 1h, got %v", cfg.Store.Retention)
	}

	if cfg.Notification.Type == "slack" {
		if cfg.Notification.WebhookURL == "" {
			return fmt.Errorf("notification.webhook_url is required when type is \"slack\"")
		}
		if len(cfg.Notification.WebhookURL) < len("https://hooks.slack.com/") ||
			cfg.Notification.WebhookURL[:len("https://hooks.slack.com/")] != "https://hooks.slack.com/" {
			return fmt.Errorf("notification.webhook_url must start with https://hooks.slack.com/")
		}
	}

	for i, h := range cfg.CI.Hooks {
		if h.Run == "" {
			return fmt.Errorf("ci.hooks[%d]: run command is required", i)
		}
	}

	return nil
}
