package service

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/commitgate/commitgate/domain"
)

// gitLogFormat emits "<sha>\x00<full message>\x00" records
const gitLogFormat = "%H%x00%B%x00"

// GitCommitSource reads commits from a local repository with `git log`,
// so the gate can run without any hosting API (pre-push hooks, local CI).
type GitCommitSource struct {
	// Dir is the repository directory ("" = working directory)
	Dir string
}

// NewGitCommitSource creates a local git commit source
func NewGitCommitSource(dir string) *GitCommitSource {
	return &GitCommitSource{Dir: dir}
}

// FetchCommits lists the commits in the request's revision range
// (e.g. "origin/main..HEAD"), oldest first.
func (s *GitCommitSource) FetchCommits(ctx context.Context, req domain.CheckRequest) ([]domain.RawCommit, error) {
	if req.GitRange == "" {
		return nil, domain.NewSourceError("no git revision range specified", nil)
	}

	cmd := exec.CommandContext(ctx, "git", "log", "--reverse", "--format="+gitLogFormat, req.GitRange)
	cmd.Dir = s.Dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return nil, domain.NewSourceError(
			fmt.Sprintf("git log %s failed: %s", req.GitRange, detail), err)
	}

	return parseGitLog(out), nil
}

// parseGitLog decodes the NUL-delimited sha/message records
func parseGitLog(out []byte) []domain.RawCommit {
	fields := strings.Split(string(out), "\x00")

	var commits []domain.RawCommit
	for i := 0; i+1 < len(fields); i += 2 {
		sha := strings.TrimSpace(fields[i])
		if sha == "" {
			continue
		}
		commits = append(commits, domain.RawCommit{
			ID: sha,
			// git appends a newline to %B; the parser treats trailing
			// blank lines as absent anyway, but keep the record clean
			Message: strings.TrimRight(fields[i+1], "\n"),
		})
	}
	return commits
}
