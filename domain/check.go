package domain

import (
	"context"
	"io"
)

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// CheckRequest represents a request to validate the commits of one pull request
type CheckRequest struct {
	// Source selection: either a hosted pull request...
	Repo     string // "owner/name"
	PRNumber int

	// ...or a local git revision range
	GitRange string // e.g. "origin/main..HEAD"

	// Rules holds the configured limits
	Rules RuleConfig

	// Output configuration
	OutputFormat OutputFormat
	OutputWriter io.Writer

	// Annotations controls GitHub Actions error annotations on failure
	Annotations bool

	// Concurrency is the number of parallel validation workers (0 = NumCPU)
	Concurrency int

	// ConfigPath is the explicit config file path, if any
	ConfigPath string
}

// CommitSource supplies the ordered commit sequence for a pull request.
// Implementations fetch from a hosting API, local git, or test fixtures;
// the validation engine only depends on this shape.
type CommitSource interface {
	// FetchCommits returns the commits of the request's pull request,
	// oldest first. A retrieval failure is surfaced as a source error;
	// the engine never retries.
	FetchCommits(ctx context.Context, req CheckRequest) ([]RawCommit, error)
}

// OutputFormatter renders an aggregate result in a given format
type OutputFormatter interface {
	Write(result *AggregateResult, format OutputFormat, writer io.Writer) error
}

// ProgressManager handles progress reporting for long-running operations
type ProgressManager interface {
	// StartTask begins tracking a task with a total step count
	StartTask(description string, total int) TaskProgress

	// IsInteractive reports whether progress output is shown
	IsInteractive() bool

	// Close cleans up all tasks
	Close()
}

// TaskProgress tracks progress of a single task
type TaskProgress interface {
	// Increment adds n to the current progress
	Increment(n int)

	// Describe updates the current item description
	Describe(description string)

	// Complete marks the task as finished
	Complete()
}
