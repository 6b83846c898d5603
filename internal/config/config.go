// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config handles configuration loading and validation for the gotweet CLI
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	// Zone data for timezone settings on hosts without it
	_ "time/tzdata"

	"github.com/blinklabs-io/gotweet/ledger"
	"github.com/blinklabs-io/gotweet/ledger/common"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLedgerFile       = "ledger.db"
	DefaultKeypairFile      = "id.json"
	DefaultFetchConcurrency = 8
)

// Config holds the CLI configuration
type Config struct {
	// Path to the bolt ledger file
	Ledger string `yaml:"ledger"`
	// Path to the signer keypair file
	Keypair  string `yaml:"keypair"`
	LogLevel string `yaml:"log_level"`
	// IANA zone used to render creation times. Empty means UTC
	Timezone            string `yaml:"timezone"`
	ProgramID           string `yaml:"program_id"`
	FetchConcurrency    int    `yaml:"fetch_concurrency"`
	VerifyDiscriminator bool   `yaml:"verify_discriminator"`
}

// DefaultConfig returns a Config with files placed under dataDir
func DefaultConfig(dataDir string) Config {
	return Config{
		Ledger:              filepath.Join(dataDir, DefaultLedgerFile),
		Keypair:             filepath.Join(dataDir, DefaultKeypairFile),
		LogLevel:            "info",
		ProgramID:           ledger.DefaultProgramID.String(),
		FetchConcurrency:    DefaultFetchConcurrency,
		VerifyDiscriminator: true,
	}
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "gotweet")
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "gotweet", "config.yaml")
}

// Load reads configuration from configPath on top of the defaults for dataDir.
// A missing file is not an error
func Load(configPath string, dataDir string) (*Config, error) {
	cfg := DefaultConfig(dataDir)
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}
	cfg.applyDefaults(dataDir)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options
func (c *Config) applyDefaults(dataDir string) {
	defaults := DefaultConfig(dataDir)
	if c.Ledger == "" {
		c.Ledger = defaults.Ledger
	}
	if c.Keypair == "" {
		c.Keypair = defaults.Keypair
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.ProgramID == "" {
		c.ProgramID = defaults.ProgramID
	}
	if c.FetchConcurrency == 0 {
		c.FetchConcurrency = defaults.FetchConcurrency
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Ledger == "" {
		return errors.New("ledger cannot be empty")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.Program(); err != nil {
		return err
	}
	if c.FetchConcurrency < 1 {
		return errors.New("fetch_concurrency must be at least 1")
	}
	return nil
}

// Level returns the configured log level
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return level, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return level, nil
}

// Location returns the time zone used to render creation times
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Program returns the configured program address
func (c *Config) Program() (common.PublicKey, error) {
	id, err := common.NewPublicKeyFromString(c.ProgramID)
	if err != nil {
		return common.PublicKey{}, fmt.Errorf("invalid program_id: %w", err)
	}
	return id, nil
}
