package service

import (
	"context"

	"github.com/commitgate/commitgate/domain"
	"github.com/commitgate/commitgate/internal/linter"
)

// LintService runs the full validation pipeline for one pull request:
// fetch commits, validate each one, aggregate the verdicts.
type LintService struct {
	source   domain.CommitSource
	progress domain.ProgressManager
}

// NewLintService creates a new lint service for the given commit source
func NewLintService(source domain.CommitSource) *LintService {
	return &LintService{source: source}
}

// NewLintServiceWithProgress creates a lint service with progress reporting
func NewLintServiceWithProgress(source domain.CommitSource, pm domain.ProgressManager) *LintService {
	return &LintService{source: source, progress: pm}
}

// Run executes the validation run described by the request.
// Configuration errors and source failures abort before any verdict is
// produced; rule violations are reported in the result, never as an error.
func (s *LintService) Run(ctx context.Context, req domain.CheckRequest) (*domain.AggregateResult, error) {
	rules, err := linter.NewRuleSet(req.Rules)
	if err != nil {
		return nil, err
	}

	commits, err := s.source.FetchCommits(ctx, req)
	if err != nil {
		if domain.IsSourceError(err) {
			return nil, err
		}
		return nil, domain.NewSourceError("failed to fetch commits", err)
	}

	validator := NewParallelValidatorWithOptions(req.Concurrency, s.progress)
	verdicts, err := validator.ValidateAll(ctx, commits, rules)
	if err != nil {
		return nil, err
	}

	result := linter.Aggregate(verdicts)
	return &result, nil
}
