package domain

// RawCommit is a single commit as supplied by a CommitSource.
// Commits are ordered oldest first, matching the hosting platform convention.
type RawCommit struct {
	// ID identifies the commit (usually the SHA)
	ID string `json:"id"`

	// Message is the full commit message, subject and body
	Message string `json:"message"`
}

// ParsedMessage is a commit message split into its structural parts
type ParsedMessage struct {
	// Subject is the first line, trimmed of trailing whitespace
	Subject string `json:"subject"`

	// BodyLines are the lines after the first blank line, in original order.
	// A message without a blank-line separator has no body.
	BodyLines []string `json:"body_lines,omitempty"`
}

// RuleKind identifies a single validation rule
type RuleKind string

const (
	// RuleSubjectMissing fires when the subject line is empty
	RuleSubjectMissing RuleKind = "subject-missing"

	// RuleSubjectTooLong fires when the subject exceeds the configured limit
	RuleSubjectTooLong RuleKind = "subject-too-long"

	// RuleDescriptionMissing fires when the body has no non-blank line
	RuleDescriptionMissing RuleKind = "description-missing"

	// RuleLineTooLong fires once per body line exceeding the wrap limit
	RuleLineTooLong RuleKind = "line-too-long"
)

// RuleConfig holds the two configured limits.
// The core defines no defaults; both limits must be supplied and positive.
type RuleConfig struct {
	// SubjectLimit is the maximum subject length in characters (inclusive)
	SubjectLimit int `json:"subject_limit" yaml:"subject_limit"`

	// DescriptionLimit is the maximum body line length in characters (inclusive)
	DescriptionLimit int `json:"description_limit" yaml:"description_limit"`
}

// Validate checks that both limits are present and positive
func (c RuleConfig) Validate() error {
	if c.SubjectLimit <= 0 {
		return NewConfigError("subject limit must be a positive integer", nil)
	}
	if c.DescriptionLimit <= 0 {
		return NewConfigError("description limit must be a positive integer", nil)
	}
	return nil
}

// Violation is a single rule violation found in one commit
type Violation struct {
	// Rule is the rule that fired
	Rule RuleKind `json:"rule" yaml:"rule"`

	// Detail is a human-readable description of the violation,
	// including the offending length/limit and line number where relevant
	Detail string `json:"detail" yaml:"detail"`
}

// CommitVerdict is the validation outcome for a single commit
type CommitVerdict struct {
	// CommitID identifies the commit this verdict belongs to
	CommitID string `json:"commit_id" yaml:"commit_id"`

	// Violations lists every rule violation found, in rule order.
	// An empty list means the commit passed.
	Violations []Violation `json:"violations" yaml:"violations"`
}

// Passed reports whether the commit satisfied every rule
func (v CommitVerdict) Passed() bool {
	return len(v.Violations) == 0
}

// CheckSummary provides aggregate statistics over a validation run
type CheckSummary struct {
	TotalCommits    int `json:"total_commits" yaml:"total_commits"`
	PassedCommits   int `json:"passed_commits" yaml:"passed_commits"`
	FailedCommits   int `json:"failed_commits" yaml:"failed_commits"`
	TotalViolations int `json:"total_violations" yaml:"total_violations"`
}

// AggregateResult combines per-commit verdicts into an overall outcome
type AggregateResult struct {
	// Verdicts preserve the input commit order
	Verdicts []CommitVerdict `json:"verdicts" yaml:"verdicts"`

	// OverallPass is true iff every verdict passed.
	// A run over zero commits passes vacuously.
	OverallPass bool `json:"overall_pass" yaml:"overall_pass"`

	// Summary holds aggregate counts
	Summary CheckSummary `json:"summary" yaml:"summary"`
}

// ExitCode maps the aggregate outcome to a process exit status
func (r *AggregateResult) ExitCode() int {
	if r.OverallPass {
		return 0
	}
	return 1
}
