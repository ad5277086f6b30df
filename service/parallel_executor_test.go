package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/commitgate/commitgate/domain"
	"github.com/commitgate/commitgate/internal/linter"
	"github.com/commitgate/commitgate/internal/testutil"
)

func testRuleSet(t *testing.T) *linter.RuleSet {
	t.Helper()
	rs, err := linter.NewRuleSet(testutil.Limits(50, 72))
	if err != nil {
		t.Fatalf("NewRuleSet() error: %v", err)
	}
	return rs
}

func TestValidateAll_PreservesInputOrder(t *testing.T) {
	// Enough commits that worker scheduling would scramble a naive append
	var commits []domain.RawCommit
	for i := 0; i < 200; i++ {
		commits = append(commits, testutil.Commit(
			fmt.Sprintf("sha%03d", i),
			fmt.Sprintf("Commit %d\n\nbody line", i),
		))
	}

	v := NewParallelValidatorWithOptions(8, nil)
	verdicts, err := v.ValidateAll(context.Background(), commits, testRuleSet(t))
	if err != nil {
		t.Fatalf("ValidateAll() error: %v", err)
	}

	if len(verdicts) != len(commits) {
		t.Fatalf("Got %d verdicts for %d commits", len(verdicts), len(commits))
	}
	for i, verdict := range verdicts {
		if want := fmt.Sprintf("sha%03d", i); verdict.CommitID != want {
			t.Fatalf("Verdict %d is for %s, want %s", i, verdict.CommitID, want)
		}
	}
}

func TestValidateAll_EmptyInput(t *testing.T) {
	v := NewParallelValidator()
	verdicts, err := v.ValidateAll(context.Background(), nil, testRuleSet(t))
	if err != nil {
		t.Fatalf("ValidateAll() error: %v", err)
	}
	if len(verdicts) != 0 {
		t.Errorf("Expected no verdicts, got %d", len(verdicts))
	}
}

func TestValidateAll_MixedResults(t *testing.T) {
	commits := []domain.RawCommit{
		testutil.Commit("good", "Fix parser\n\nHandle CRLF input."),
		testutil.Commit("bad", strings.Repeat("x", 60)),
	}

	v := NewParallelValidatorWithOptions(2, nil)
	verdicts, err := v.ValidateAll(context.Background(), commits, testRuleSet(t))
	if err != nil {
		t.Fatalf("ValidateAll() error: %v", err)
	}

	if !verdicts[0].Passed() {
		t.Errorf("First commit should pass, got %v", verdicts[0].Violations)
	}
	if verdicts[1].Passed() {
		t.Error("Second commit should fail")
	}
}

func TestValidateAll_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	commits := []domain.RawCommit{testutil.Commit("sha1", "Subject\n\nbody")}
	v := NewParallelValidatorWithOptions(1, nil)

	if _, err := v.ValidateAll(ctx, commits, testRuleSet(t)); err == nil {
		t.Error("Expected error for cancelled context")
	}
}
