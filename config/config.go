// Package config loads server settings from an optional YAML file with
// SLIDECAST_* environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Addr is the listen address for the web server.
	Addr string `yaml:"addr"`
	// RootPath holds the database and uploaded assets.
	RootPath string `yaml:"root_path"`
	// AssetBaseURL prefixes relative media references when serving pages.
	AssetBaseURL string `yaml:"asset_base_url"`
	// PublicURL is the externally reachable base URL, used for player
	// links and QR codes.
	PublicURL string `yaml:"public_url"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	AWS AWSConfig `yaml:"aws"`
}

// AWSConfig configures the shared media pool sync. An empty bucket
// disables the sync entirely.
type AWSConfig struct {
	Profile string `yaml:"profile"`
	Bucket  string `yaml:"bucket"`
	Prefix  string `yaml:"prefix"`
	// SyncIntervalMinutes defaults to 60.
	SyncIntervalMinutes int `yaml:"sync_interval_minutes"`
}

// Load reads the config file at path when it exists, fills in defaults
// and applies environment overrides. A missing file is not an error;
// an unreadable or malformed one is.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Addr:     "0.0.0.0:8080",
		RootPath: "./data",
		LogLevel: "info",
		AWS:      AWSConfig{SyncIntervalMinutes: 60},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	applyEnv(cfg)

	if cfg.RootPath == "" {
		return nil, fmt.Errorf("root_path must not be empty")
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Addr, "SLIDECAST_ADDR")
	setString(&cfg.RootPath, "SLIDECAST_ROOT_PATH")
	setString(&cfg.AssetBaseURL, "SLIDECAST_ASSET_BASE_URL")
	setString(&cfg.PublicURL, "SLIDECAST_PUBLIC_URL")
	setString(&cfg.LogLevel, "SLIDECAST_LOG_LEVEL")
	setString(&cfg.AWS.Profile, "SLIDECAST_AWS_PROFILE")
	setString(&cfg.AWS.Bucket, "SLIDECAST_AWS_BUCKET")
	setString(&cfg.AWS.Prefix, "SLIDECAST_AWS_PREFIX")
	setInt(&cfg.AWS.SyncIntervalMinutes, "SLIDECAST_AWS_SYNC_INTERVAL_MINUTES")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		*dst = n
	}
}
