// Package config loads and validates the run configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

const (
	DefaultTimeoutSeconds = 30
	DefaultDelaySeconds   = 5
	DefaultErrorFile      = "logs/error_tickets.txt"
	DefaultLogDirectory   = "adata_fs_automation_logs"
)

// Update strategies. CheckFirst reads the ticket before writing and skips
// tickets whose sync status is already satisfied; AlwaysUpdate writes
// unconditionally.
const (
	StrategyCheckFirst   = "check-first"
	StrategyAlwaysUpdate = "always-update"
)

// Config is the full run configuration. Built once at startup, immutable
// for the run's duration.
type Config struct {
	Credentials struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"credentials"`
	API struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"api"`
	CSV struct {
		FilePath string `yaml:"file_path"`
	} `yaml:"csv"`
	Run struct {
		DelaySeconds int    `yaml:"delay_seconds"`
		Strategy     string `yaml:"strategy"`
	} `yaml:"run"`
	Report struct {
		ErrorFile string `yaml:"error_file"`
	} `yaml:"report"`
	Logging struct {
		Directory string `yaml:"directory"`
	} `yaml:"logging"`
	Metrics struct {
		PushgatewayURL string `yaml:"pushgateway_url"`
	} `yaml:"metrics"`
}

// Load reads the YAML config at path, applies defaults and validates
// required keys.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file %s: %w", path, err)
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.Run.DelaySeconds <= 0 {
		c.Run.DelaySeconds = DefaultDelaySeconds
	}
	if c.Run.Strategy == "" {
		c.Run.Strategy = StrategyCheckFirst
	}
	if c.Report.ErrorFile == "" {
		c.Report.ErrorFile = DefaultErrorFile
	}
	if c.Logging.Directory == "" {
		c.Logging.Directory = DefaultLogDirectory
	}
}

func (c *Config) validate() error {
	if c.Credentials.Username == "" {
		return fmt.Errorf("credentials.username is not set")
	}
	if c.Credentials.Password == "" {
		return fmt.Errorf("credentials.password is not set")
	}
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is not set")
	}
	if c.CSV.FilePath == "" {
		return fmt.Errorf("csv.file_path is not set")
	}
	switch c.Run.Strategy {
	case StrategyCheckFirst, StrategyAlwaysUpdate:
	default:
		return fmt.Errorf("run.strategy must be %q or %q, got %q",
			StrategyCheckFirst, StrategyAlwaysUpdate, c.Run.Strategy)
	}
	return nil
}
