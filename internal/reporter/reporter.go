// Package reporter translates aggregate results into the reporting boundary:
// process exit codes and CI annotations.
package reporter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/commitgate/commitgate/domain"
)

// Exit codes for the check command
const (
	ExitPass       = 0
	ExitViolations = 1
	ExitRunError   = 2
)

// ExitCodeFor maps an aggregate result to the process exit status
func ExitCodeFor(result *domain.AggregateResult) int {
	if result == nil {
		return ExitRunError
	}
	return result.ExitCode()
}

// InGitHubActions reports whether the process runs inside a GitHub Actions job
func InGitHubActions() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

// WriteAnnotations emits one GitHub Actions workflow error command per
// violation so failures surface inline in the Actions UI. Passing commits
// produce no annotations.
func WriteAnnotations(w io.Writer, result *domain.AggregateResult) error {
	for _, verdict := range result.Verdicts {
		for _, violation := range verdict.Violations {
			msg := fmt.Sprintf("commit %s: [%s] %s", verdict.CommitID, violation.Rule, violation.Detail)
			if _, err := fmt.Fprintf(w, "::error title=Commit message check::%s\n", escapeAnnotation(msg)); err != nil {
				return domain.NewOutputError("failed to write annotation", err)
			}
		}
	}
	return nil
}

// escapeAnnotation escapes the characters the workflow-command syntax reserves
func escapeAnnotation(s string) string {
	r := strings.NewReplacer(
		"%", "%25",
		"\r", "%0D",
		"\n", "%0A",
	)
	return r.Replace(s)
}
