package service

import (
	"context"
	"runtime"
	"time"

	"github.com/commitgate/commitgate/domain"
	"github.com/commitgate/commitgate/internal/linter"
	"github.com/commitgate/commitgate/internal/parser"
	"golang.org/x/sync/errgroup"
)

// Default values for parallel validation
const (
	// DefaultMaxConcurrency is used when the configured value is invalid
	DefaultMaxConcurrency = 4

	DefaultTimeout = 5 * time.Minute
)

// ParallelValidator validates commits concurrently. Commits are independent,
// so no locking is needed beyond merging the verdicts back into input order.
type ParallelValidator struct {
	maxConcurrency int
	timeout        time.Duration
	progress       domain.ProgressManager
}

// NewParallelValidator creates a validator with runtime.NumCPU() workers
func NewParallelValidator() *ParallelValidator {
	return &ParallelValidator{
		maxConcurrency: runtime.NumCPU(),
		timeout:        DefaultTimeout,
	}
}

// NewParallelValidatorWithOptions creates a validator with explicit settings.
// jobs <= 0 falls back to the default concurrency.
func NewParallelValidatorWithOptions(jobs int, pm domain.ProgressManager) *ParallelValidator {
	v := NewParallelValidator()
	if jobs > 0 {
		v.maxConcurrency = jobs
	} else if v.maxConcurrency <= 0 {
		v.maxConcurrency = DefaultMaxConcurrency
	}
	v.progress = pm
	return v
}

// ValidateAll parses and validates every commit against the rule set.
// The returned verdicts are index-aligned with the input commits, so the
// final report preserves commit order regardless of worker scheduling.
func (v *ParallelValidator) ValidateAll(ctx context.Context, commits []domain.RawCommit, rules *linter.RuleSet) ([]domain.CommitVerdict, error) {
	verdicts := make([]domain.CommitVerdict, len(commits))
	if len(commits) == 0 {
		return verdicts, nil
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	var task domain.TaskProgress = &NoOpTaskProgress{}
	if v.progress != nil {
		task = v.progress.StartTask("Validating commits", len(commits))
	}
	defer task.Complete()

	g, gCtx := errgroup.WithContext(timeoutCtx)
	g.SetLimit(v.maxConcurrency)

	for i, commit := range commits {
		g.Go(func() error {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			default:
			}

			// Each worker writes only its own slot
			verdicts[i] = rules.Validate(commit.ID, parser.Parse(commit.Message))
			task.Increment(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return verdicts, nil
}
