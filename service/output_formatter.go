package service

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/commitgate/commitgate/domain"
	"github.com/commitgate/commitgate/internal/version"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// OutputFormatterImpl implements the domain.OutputFormatter interface
type OutputFormatterImpl struct{}

// NewOutputFormatter creates a new output formatter
func NewOutputFormatter() *OutputFormatterImpl {
	return &OutputFormatterImpl{}
}

// ResultJSON wraps AggregateResult with report metadata
type ResultJSON struct {
	Version     string                 `json:"version" yaml:"version"`
	GeneratedAt string                 `json:"generated_at" yaml:"generated_at"`
	OverallPass bool                   `json:"overall_pass" yaml:"overall_pass"`
	Summary     domain.CheckSummary    `json:"summary" yaml:"summary"`
	Verdicts    []domain.CommitVerdict `json:"verdicts" yaml:"verdicts"`
}

// Write renders the aggregate result in the specified format
func (f *OutputFormatterImpl) Write(result *domain.AggregateResult, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return f.writeJSON(result, writer)
	case domain.OutputFormatYAML:
		return f.writeYAML(result, writer)
	case domain.OutputFormatText:
		return f.writeText(result, writer)
	default:
		return domain.NewOutputError(fmt.Sprintf("unsupported output format: %s", format), nil)
	}
}

func (f *OutputFormatterImpl) envelope(result *domain.AggregateResult) ResultJSON {
	return ResultJSON{
		Version:     version.GetVersion(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		OverallPass: result.OverallPass,
		Summary:     result.Summary,
		Verdicts:    result.Verdicts,
	}
}

func (f *OutputFormatterImpl) writeJSON(result *domain.AggregateResult, writer io.Writer) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(f.envelope(result)); err != nil {
		return domain.NewOutputError("failed to encode JSON report", err)
	}
	return nil
}

func (f *OutputFormatterImpl) writeYAML(result *domain.AggregateResult, writer io.Writer) error {
	encoder := yaml.NewEncoder(writer)
	defer encoder.Close()
	if err := encoder.Encode(f.envelope(result)); err != nil {
		return domain.NewOutputError("failed to encode YAML report", err)
	}
	return nil
}

// writeText renders the human report: one line per commit, violations
// indented under failing commits, and a one-line summary at the end.
func (f *OutputFormatterImpl) writeText(result *domain.AggregateResult, writer io.Writer) error {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	for _, verdict := range result.Verdicts {
		if verdict.Passed() {
			if _, err := green.Fprintf(writer, "✅ Commit %s passed all checks.\n", verdict.CommitID); err != nil {
				return domain.NewOutputError("failed to write report", err)
			}
			continue
		}

		if _, err := red.Fprintf(writer, "❌ Commit %s failed checks:\n", verdict.CommitID); err != nil {
			return domain.NewOutputError("failed to write report", err)
		}
		for _, violation := range verdict.Violations {
			if _, err := fmt.Fprintf(writer, "   - %s\n", violation.Detail); err != nil {
				return domain.NewOutputError("failed to write report", err)
			}
		}
	}

	if result.OverallPass {
		_, err := green.Fprintf(writer, "\n✅ All %d commit(s) passed validation.\n", result.Summary.TotalCommits)
		if err != nil {
			return domain.NewOutputError("failed to write report", err)
		}
		return nil
	}

	_, err := red.Fprintf(writer, "\n❌ %d commit(s) failed validation.\n", result.Summary.FailedCommits)
	if err != nil {
		return domain.NewOutputError("failed to write report", err)
	}
	return nil
}
