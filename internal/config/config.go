// Package config loads and validates commitgate configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Default limits mirror the conventional git commit guidelines:
// 50-character subjects, 72-character wrapped bodies.
const (
	DefaultSubjectLimit     = 50
	DefaultDescriptionLimit = 72
)

// DefaultTokenEnv is the environment variable read for the GitHub API token
const DefaultTokenEnv = "GITHUB_TOKEN"

// ConfigFileName is the default config file name
const ConfigFileName = ".commitgate.yaml"

// Config represents the main configuration structure
type Config struct {
	// Rules holds the message limits
	Rules RulesConfig `json:"rules" mapstructure:"rules" yaml:"rules"`

	// Source holds commit source configuration
	Source SourceConfig `json:"source,omitempty" mapstructure:"source" yaml:"source"`

	// Output holds output formatting configuration
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`

	// Performance holds parallelism configuration
	Performance PerformanceConfig `json:"performance,omitempty" mapstructure:"performance" yaml:"performance"`
}

// RulesConfig holds the configured limits
type RulesConfig struct {
	// SubjectLimit is the maximum subject length in characters
	SubjectLimit int `json:"subject_limit" mapstructure:"subject_limit" yaml:"subject_limit"`

	// DescriptionLimit is the maximum body line length in characters
	DescriptionLimit int `json:"description_limit" mapstructure:"description_limit" yaml:"description_limit"`
}

// SourceConfig holds commit source configuration
type SourceConfig struct {
	// BaseURL overrides the GitHub API base URL (GitHub Enterprise)
	BaseURL string `json:"base_url,omitempty" mapstructure:"base_url" yaml:"base_url,omitempty"`

	// TokenEnv is the environment variable holding the API token
	TokenEnv string `json:"token_env" mapstructure:"token_env" yaml:"token_env"`
}

// OutputConfig holds output formatting configuration
type OutputConfig struct {
	// Format specifies the output format: text, json, yaml
	Format string `json:"format" mapstructure:"format" yaml:"format"`

	// Annotations enables GitHub Actions error annotations
	Annotations bool `json:"annotations" mapstructure:"annotations" yaml:"annotations"`
}

// PerformanceConfig holds parallelism configuration
type PerformanceConfig struct {
	// Jobs is the number of parallel validation workers (0 = NumCPU)
	Jobs int `json:"jobs" mapstructure:"jobs" yaml:"jobs"`
}

// DefaultConfig returns the configuration the tool ships with
func DefaultConfig() *Config {
	return &Config{
		Rules: RulesConfig{
			SubjectLimit:     DefaultSubjectLimit,
			DescriptionLimit: DefaultDescriptionLimit,
		},
		Source: SourceConfig{
			TokenEnv: DefaultTokenEnv,
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.Rules.SubjectLimit <= 0 {
		return fmt.Errorf("rules.subject_limit must be > 0, got %d", c.Rules.SubjectLimit)
	}
	if c.Rules.DescriptionLimit <= 0 {
		return fmt.Errorf("rules.description_limit must be > 0, got %d", c.Rules.DescriptionLimit)
	}

	validFormats := map[string]bool{
		"text": true,
		"json": true,
		"yaml": true,
	}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("invalid output.format '%s', must be one of: text, json, yaml", c.Output.Format)
	}

	if c.Performance.Jobs < 0 {
		return fmt.Errorf("performance.jobs must be >= 0, got %d", c.Performance.Jobs)
	}

	return nil
}

// LoadConfig loads configuration from file or returns the default config.
// If configPath is empty a config file is discovered by walking from the
// working directory up to the filesystem root.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = FindConfigFile("")
	}
	return loadConfigFromFile(configPath)
}

// loadConfigFromFile reads and parses a configuration file
func loadConfigFromFile(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}

	// A new viper instance per load avoids shared state between runs
	v := viper.New()
	config := DefaultConfig()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// FindConfigFile searches for a config file starting at startDir (working
// directory when empty) and walking parent directories up to the root.
// Returns "" when no config file exists.
func FindConfigFile(startDir string) string {
	candidates := []string{
		ConfigFileName,
		".commitgate.yml",
		"commitgate.yaml",
		"commitgate.yml",
	}

	dir := startDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return ""
		}
		dir = cwd
	}

	for {
		for _, candidate := range candidates {
			path := filepath.Join(dir, candidate)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("rules", config.Rules)
	v.Set("source", config.Source)
	v.Set("output", config.Output)
	v.Set("performance", config.Performance)

	return v.WriteConfig()
}
