package main

import (
	"context"
	"fmt"
	"os"

	"github.com/commitgate/commitgate/domain"
	"github.com/commitgate/commitgate/internal/config"
	"github.com/commitgate/commitgate/internal/reporter"
	"github.com/commitgate/commitgate/service"
	"github.com/spf13/cobra"
)

// CheckExitError is a custom error type for check command exit codes
type CheckExitError struct {
	Code    int
	Message string
}

func (e *CheckExitError) Error() string {
	return e.Message
}

var (
	checkRepo        string
	checkPRNumber    int
	checkGitRange    string
	checkSubLimit    int
	checkDescLimit   int
	checkFormat      string
	checkJSON        bool
	checkAnnotations bool
	checkJobs        int
	checkConfigPath  string
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the commit messages of a pull request",
		Long: `Validate every commit message of a pull request against the configured
subject and description limits.

Exit codes:
  0 - All commits pass
  1 - One or more commits violate the rules
  2 - Run error (bad configuration, commits could not be fetched)

Examples:
  # Check a GitHub pull request (token read from $GITHUB_TOKEN)
  commitgate check --repo owner/name --pr-number 42

  # Check a local commit range instead of a hosted PR
  commitgate check --git-range origin/main..HEAD

  # Custom limits
  commitgate check --repo owner/name --pr-number 42 --sub-limit 60 --desc-limit 100

  # JSON output for machine parsing
  commitgate check --repo owner/name --pr-number 42 --json

  # GitHub Actions error annotations
  commitgate check --repo owner/name --pr-number 42 --annotations`,
		RunE:          runCheck,
		SilenceUsage:  true, // Don't print usage on errors (we handle our own output)
		SilenceErrors: true, // Don't print error messages (we handle our own output)
	}

	cmd.Flags().StringVar(&checkRepo, "repo", "",
		"Repository as owner/name")
	cmd.Flags().IntVar(&checkPRNumber, "pr-number", 0,
		"Pull request number")
	cmd.Flags().StringVar(&checkGitRange, "git-range", "",
		"Local git revision range to check instead of a hosted PR")
	cmd.Flags().IntVar(&checkSubLimit, "sub-limit", config.DefaultSubjectLimit,
		"Maximum subject length in characters")
	cmd.Flags().IntVar(&checkDescLimit, "desc-limit", config.DefaultDescriptionLimit,
		"Maximum description line length in characters")
	cmd.Flags().StringVarP(&checkFormat, "format", "f", "",
		"Output format: text, json, yaml")
	cmd.Flags().BoolVar(&checkJSON, "json", false,
		"Output results as JSON (shorthand for --format json)")
	cmd.Flags().BoolVar(&checkAnnotations, "annotations", false,
		"Emit GitHub Actions error annotations for violations")
	cmd.Flags().IntVar(&checkJobs, "jobs", 0,
		"Number of parallel validation workers (0 = number of CPUs)")
	cmd.Flags().StringVarP(&checkConfigPath, "config", "c", "",
		"Path to config file")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	loader := service.NewConfigurationLoader()
	base, cfg, err := loader.Load(checkConfigPath)
	if err != nil {
		return &CheckExitError{Code: reporter.ExitRunError, Message: err.Error()}
	}

	req := loader.Merge(base, flagRequest(), cmd.Flags().Changed)

	if err := req.Rules.Validate(); err != nil {
		return &CheckExitError{Code: reporter.ExitRunError, Message: err.Error()}
	}

	// Progress bars are suppressed for machine-readable output
	pm := service.NewProgressManager(req.OutputFormat == domain.OutputFormatText)
	defer pm.Close()

	source, err := selectSource(req, cfg, pm)
	if err != nil {
		return &CheckExitError{Code: reporter.ExitRunError, Message: err.Error()}
	}

	svc := service.NewLintServiceWithProgress(source, pm)
	result, err := svc.Run(context.Background(), *req)
	if err != nil {
		return &CheckExitError{Code: reporter.ExitRunError, Message: err.Error()}
	}

	formatter := service.NewOutputFormatter()
	if err := formatter.Write(result, req.OutputFormat, req.OutputWriter); err != nil {
		return &CheckExitError{Code: reporter.ExitRunError, Message: err.Error()}
	}

	if req.Annotations && reporter.InGitHubActions() {
		if err := reporter.WriteAnnotations(os.Stdout, result); err != nil {
			return &CheckExitError{Code: reporter.ExitRunError, Message: err.Error()}
		}
	}

	if code := reporter.ExitCodeFor(result); code != reporter.ExitPass {
		// Report already printed; only the exit status is left
		return &CheckExitError{Code: code}
	}
	return nil
}

// flagRequest builds the CLI-flag side of the check request
func flagRequest() *domain.CheckRequest {
	format := domain.OutputFormat(checkFormat)
	if checkJSON {
		format = domain.OutputFormatJSON
	}

	return &domain.CheckRequest{
		Repo:     checkRepo,
		PRNumber: checkPRNumber,
		GitRange: checkGitRange,
		Rules: domain.RuleConfig{
			SubjectLimit:     checkSubLimit,
			DescriptionLimit: checkDescLimit,
		},
		OutputFormat: format,
		OutputWriter: os.Stdout,
		Annotations:  checkAnnotations,
		Concurrency:  checkJobs,
	}
}

// selectSource picks the commit source the flags describe
func selectSource(req *domain.CheckRequest, cfg *config.Config, pm domain.ProgressManager) (domain.CommitSource, error) {
	switch {
	case req.GitRange != "":
		return service.NewGitCommitSource(""), nil
	case req.Repo != "" && req.PRNumber > 0:
		return service.NewGitHubCommitSource(cfg.Source, pm)
	default:
		return nil, fmt.Errorf("specify either --repo with --pr-number, or --git-range")
	}
}
