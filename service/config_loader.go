package service

import (
	"github.com/commitgate/commitgate/domain"
	"github.com/commitgate/commitgate/internal/config"
)

// ConfigurationLoader bridges the config file layer and the domain request
type ConfigurationLoader struct{}

// NewConfigurationLoader creates a new configuration loader service
func NewConfigurationLoader() *ConfigurationLoader {
	return &ConfigurationLoader{}
}

// Load reads the config file at path (discovered when empty) and converts it
// into a CheckRequest carrying the file's limits and output settings.
func (c *ConfigurationLoader) Load(path string) (*domain.CheckRequest, *config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, nil, domain.NewConfigError("failed to load configuration file", err)
	}

	req := c.toRequest(cfg)
	req.ConfigPath = path
	return req, cfg, nil
}

// toRequest converts file configuration into a check request
func (c *ConfigurationLoader) toRequest(cfg *config.Config) *domain.CheckRequest {
	return &domain.CheckRequest{
		Rules: domain.RuleConfig{
			SubjectLimit:     cfg.Rules.SubjectLimit,
			DescriptionLimit: cfg.Rules.DescriptionLimit,
		},
		OutputFormat: domain.OutputFormat(cfg.Output.Format),
		Annotations:  cfg.Output.Annotations,
		Concurrency:  cfg.Performance.Jobs,
	}
}

// Merge applies CLI flag overrides on top of the file-derived request.
// Paths/targets always come from flags; numeric overrides apply only when
// the flag was actually set (changed reports that).
func (c *ConfigurationLoader) Merge(base *domain.CheckRequest, override *domain.CheckRequest, changed func(string) bool) *domain.CheckRequest {
	merged := *base

	merged.Repo = override.Repo
	merged.PRNumber = override.PRNumber
	merged.GitRange = override.GitRange
	merged.OutputWriter = override.OutputWriter

	if changed("sub-limit") {
		merged.Rules.SubjectLimit = override.Rules.SubjectLimit
	}
	if changed("desc-limit") {
		merged.Rules.DescriptionLimit = override.Rules.DescriptionLimit
	}
	if changed("format") || changed("json") {
		merged.OutputFormat = override.OutputFormat
	}
	if changed("annotations") {
		merged.Annotations = override.Annotations
	}
	if changed("jobs") {
		merged.Concurrency = override.Concurrency
	}

	return &merged
}
