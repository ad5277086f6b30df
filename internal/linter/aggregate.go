package linter

import "github.com/commitgate/commitgate/domain"

// Aggregate reduces per-commit verdicts into the overall run result.
// It is a pure reduction: verdict order is preserved, and an empty input
// (a pull request with zero commits) passes vacuously.
func Aggregate(verdicts []domain.CommitVerdict) domain.AggregateResult {
	result := domain.AggregateResult{
		Verdicts:    verdicts,
		OverallPass: true,
		Summary: domain.CheckSummary{
			TotalCommits: len(verdicts),
		},
	}

	for _, v := range verdicts {
		if v.Passed() {
			result.Summary.PassedCommits++
			continue
		}
		result.OverallPass = false
		result.Summary.FailedCommits++
		result.Summary.TotalViolations += len(v.Violations)
	}

	return result
}
