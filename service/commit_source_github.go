package service

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/commitgate/commitgate/domain"
	"github.com/commitgate/commitgate/internal/config"
	"github.com/google/go-github/v66/github"
)

// githubPerPage is the page size used when listing PR commits
const githubPerPage = 100

// GitHubCommitSource fetches the commits of a pull request from the GitHub
// API. The API returns commits oldest first, which is the order the report
// preserves.
type GitHubCommitSource struct {
	client   *github.Client
	progress domain.ProgressManager
}

// NewGitHubCommitSource creates a source authenticated from the environment.
// The token variable name comes from the source config (GITHUB_TOKEN by
// default); a missing token fails fast, before any commit is evaluated.
func NewGitHubCommitSource(cfg config.SourceConfig, pm domain.ProgressManager) (*GitHubCommitSource, error) {
	tokenEnv := cfg.TokenEnv
	if tokenEnv == "" {
		tokenEnv = config.DefaultTokenEnv
	}

	token := os.Getenv(tokenEnv)
	if token == "" {
		return nil, domain.NewSourceError(fmt.Sprintf("no token found in $%s to fetch commits", tokenEnv), nil)
	}

	client := github.NewClient(nil).WithAuthToken(token)
	if cfg.BaseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(cfg.BaseURL, cfg.BaseURL)
		if err != nil {
			return nil, domain.NewSourceError("invalid GitHub base URL", err)
		}
	}

	return &GitHubCommitSource{client: client, progress: pm}, nil
}

// FetchCommits lists the pull request's commits, oldest first
func (s *GitHubCommitSource) FetchCommits(ctx context.Context, req domain.CheckRequest) ([]domain.RawCommit, error) {
	owner, name, err := splitRepo(req.Repo)
	if err != nil {
		return nil, err
	}
	if req.PRNumber <= 0 {
		return nil, domain.NewSourceError(fmt.Sprintf("invalid pull request number %d", req.PRNumber), nil)
	}

	var task domain.TaskProgress = &NoOpTaskProgress{}
	if s.progress != nil {
		task = s.progress.StartTask("Fetching commits", -1)
	}
	defer task.Complete()

	var commits []domain.RawCommit
	opts := &github.ListOptions{PerPage: githubPerPage}

	for {
		page, resp, err := s.client.PullRequests.ListCommits(ctx, owner, name, req.PRNumber, opts)
		if err != nil {
			return nil, domain.NewSourceError(
				fmt.Sprintf("failed to fetch commits for %s#%d", req.Repo, req.PRNumber), err)
		}

		for _, c := range page {
			commits = append(commits, domain.RawCommit{
				ID:      c.GetSHA(),
				Message: c.GetCommit().GetMessage(),
			})
			task.Increment(1)
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return commits, nil
}

// splitRepo splits an "owner/name" repository reference
func splitRepo(repo string) (owner, name string, err error) {
	parts := strings.Split(repo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", domain.NewSourceError(fmt.Sprintf("invalid repository %q, expected owner/name", repo), nil)
	}
	return parts[0], parts[1], nil
}
