package service

import (
	"context"
	"errors"
	"testing"

	"github.com/commitgate/commitgate/domain"
	"github.com/commitgate/commitgate/internal/testutil"
)

// stubSource implements domain.CommitSource for tests
type stubSource struct {
	commits []domain.RawCommit
	err     error
}

func (s *stubSource) FetchCommits(_ context.Context, _ domain.CheckRequest) ([]domain.RawCommit, error) {
	return s.commits, s.err
}

func TestRun_AllPassing(t *testing.T) {
	source := &stubSource{commits: []domain.RawCommit{
		testutil.Commit("aaa111", "Add feature X\n\nThis line is fine."),
		testutil.Commit("bbb222", "Fix bug Y\n\nLonger explanation of the fix."),
	}}

	svc := NewLintService(source)
	result, err := svc.Run(context.Background(), domain.CheckRequest{
		Rules: testutil.Limits(50, 72),
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if !result.OverallPass {
		t.Errorf("Expected overall pass, got %+v", result)
	}
	if result.Summary.TotalCommits != 2 || result.Summary.PassedCommits != 2 {
		t.Errorf("Unexpected summary: %+v", result.Summary)
	}
}

func TestRun_FailingCommitIsNotAnError(t *testing.T) {
	// A rule violation is a normal outcome, not a fault
	source := &stubSource{commits: []domain.RawCommit{
		testutil.Commit("aaa111", "Fix bug"),
	}}

	svc := NewLintService(source)
	result, err := svc.Run(context.Background(), domain.CheckRequest{
		Rules: testutil.Limits(50, 72),
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if result.OverallPass {
		t.Error("Commit without description should fail the run")
	}
	verdict := result.Verdicts[0]
	if len(verdict.Violations) != 1 || verdict.Violations[0].Rule != domain.RuleDescriptionMissing {
		t.Errorf("Expected a single description-missing violation, got %v", verdict.Violations)
	}
}

func TestRun_EmptyPullRequestPasses(t *testing.T) {
	svc := NewLintService(&stubSource{})
	result, err := svc.Run(context.Background(), domain.CheckRequest{
		Rules: testutil.Limits(50, 72),
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !result.OverallPass {
		t.Error("A pull request with zero commits should pass")
	}
}

func TestRun_InvalidConfigAbortsBeforeFetch(t *testing.T) {
	source := &stubSource{err: errors.New("should never be called")}

	svc := NewLintService(source)
	_, err := svc.Run(context.Background(), domain.CheckRequest{
		Rules: testutil.Limits(0, 72),
	})
	if !domain.IsConfigError(err) {
		t.Errorf("Expected config error, got %v", err)
	}
}

func TestRun_SourceFailure(t *testing.T) {
	source := &stubSource{err: errors.New("network down")}

	svc := NewLintService(source)
	_, err := svc.Run(context.Background(), domain.CheckRequest{
		Rules: testutil.Limits(50, 72),
	})
	if !domain.IsSourceError(err) {
		t.Errorf("Expected source error, got %v", err)
	}
}
