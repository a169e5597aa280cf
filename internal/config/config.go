// Package config loads the application configuration from environment
// variables and an optional YAML file. Environment variables take precedence
// over the file; both fall back to built-in defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/OvictorVieira/exchange.airdrop.analyzer/pkg/contracts/domain"
)

// Config represents the complete application configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Analyzer AnalyzerConfig `yaml:"analyzer" envconfig:"ANALYZER"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig contains the file system layout.
type PathsConfig struct {
	InputDir   string `yaml:"input_dir" envconfig:"INPUT_DIR"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR"`
	LogsDir    string `yaml:"logs_dir" envconfig:"LOGS_DIR"`
}

// AnalyzerConfig carries the default analysis parameters. Command line flags
// override these per run.
type AnalyzerConfig struct {
	Exchange        string  `yaml:"exchange" envconfig:"EXCHANGE"`
	PointsOwn       float64 `yaml:"points_own" envconfig:"POINTS_OWN"`
	PointsFree      float64 `yaml:"points_free" envconfig:"POINTS_FREE"`
	PointToToken    float64 `yaml:"point_to_token" envconfig:"POINT_TO_TOKEN"`
	TokenPrice      float64 `yaml:"token_price" envconfig:"TOKEN_PRICE"`
	RiskProfile     string  `yaml:"risk_profile" envconfig:"RISK_PROFILE"`
	LoadConcurrency int     `yaml:"load_concurrency" envconfig:"LOAD_CONCURRENCY"`
}

// Load loads configuration from environment variables and an optional YAML
// file. An explicit path wins over the default search locations.
func Load(path string) (*Config, error) {
	cfg := Default()

	configFile := path
	if configFile == "" {
		configFile = findConfigFile()
	}
	if configFile != "" {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = fileConfig
	}

	// Environment variables override the file.
	if err := envconfig.Process("AIRDROP", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile parses a YAML config file on top of the defaults.
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Inputs converts the configured analysis defaults into analyzer inputs.
func (c *Config) Inputs() domain.AnalyzerInputs {
	return domain.AnalyzerInputs{
		PointsOwn:    c.Analyzer.PointsOwn,
		PointsFree:   c.Analyzer.PointsFree,
		PointToToken: c.Analyzer.PointToToken,
		TokenPrice:   c.Analyzer.TokenPrice,
		RiskProfile:  domain.RiskProfile(c.Analyzer.RiskProfile),
	}
}

func (c *Config) validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Logging.Level)
	}

	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		return fmt.Errorf("invalid log format: %q", c.Logging.Format)
	}

	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid log output: %q", c.Logging.Output)
	}

	if c.Logging.Output != "console" && c.Logging.FilePath == "" {
		return fmt.Errorf("log file path required for output %q", c.Logging.Output)
	}

	switch domain.RiskProfile(c.Analyzer.RiskProfile) {
	case domain.RiskProfileConservative, domain.RiskProfileModerate, domain.RiskProfileAggressive:
	default:
		return fmt.Errorf("invalid risk profile: %q", c.Analyzer.RiskProfile)
	}

	if c.Analyzer.LoadConcurrency <= 0 {
		return fmt.Errorf("load concurrency must be positive: %d", c.Analyzer.LoadConcurrency)
	}

	return nil
}

// findConfigFile checks the common locations for a config file.
func findConfigFile() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return ""
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "both",
			FilePath: "logs/analyzer.log",
		},
		Paths: PathsConfig{
			InputDir:   "exports",
			ReportsDir: "reports",
			LogsDir:    "logs",
		},
		Analyzer: AnalyzerConfig{
			Exchange:        "backpack",
			PointToToken:    1,
			RiskProfile:     "moderate",
			LoadConcurrency: 4,
		},
	}
}
