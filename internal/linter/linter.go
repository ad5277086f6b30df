// Package linter implements the commit-message validation rules.
package linter

import (
	"fmt"
	"strings"

	"github.com/commitgate/commitgate/domain"
)

// RuleSet applies the configured limits to parsed commit messages.
// It is stateless beyond the immutable config and safe for concurrent use.
type RuleSet struct {
	cfg domain.RuleConfig
}

// NewRuleSet builds a RuleSet after validating the configuration
func NewRuleSet(cfg domain.RuleConfig) (*RuleSet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &RuleSet{cfg: cfg}, nil
}

// Config returns the limits this rule set enforces
func (rs *RuleSet) Config() domain.RuleConfig {
	return rs.cfg
}

// Validate checks a parsed message against every rule and returns the
// verdict for the commit. All rules are evaluated independently so a single
// run reports every problem at once; violations are emitted in rule
// declaration order, and per-line wrap violations in line order.
func (rs *RuleSet) Validate(commitID string, msg domain.ParsedMessage) domain.CommitVerdict {
	var violations []domain.Violation

	subject := strings.TrimSpace(msg.Subject)
	if subject == "" {
		violations = append(violations, domain.Violation{
			Rule:   domain.RuleSubjectMissing,
			Detail: "commit message has no subject",
		})
	}

	// Limits count characters, not bytes. Trailing whitespace was already
	// trimmed by the parser; leading whitespace counts against the limit.
	if n := charCount(msg.Subject); n > rs.cfg.SubjectLimit {
		violations = append(violations, domain.Violation{
			Rule:   domain.RuleSubjectTooLong,
			Detail: fmt.Sprintf("subject is %d characters, limit is %d", n, rs.cfg.SubjectLimit),
		})
	}

	if !hasDescription(msg.BodyLines) {
		violations = append(violations, domain.Violation{
			Rule:   domain.RuleDescriptionMissing,
			Detail: "commit message has no description",
		})
	}

	for i, line := range msg.BodyLines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if n := charCount(strings.TrimRight(line, " \t")); n > rs.cfg.DescriptionLimit {
			violations = append(violations, domain.Violation{
				Rule:   domain.RuleLineTooLong,
				Detail: fmt.Sprintf("description line %d is %d characters, limit is %d", i+1, n, rs.cfg.DescriptionLimit),
			})
		}
	}

	return domain.CommitVerdict{CommitID: commitID, Violations: violations}
}

// hasDescription reports whether the body contains at least one non-blank line
func hasDescription(body []string) bool {
	for _, line := range body {
		if strings.TrimSpace(line) != "" {
			return true
		}
	}
	return false
}

// charCount measures length in Unicode code points
func charCount(s string) int {
	return len([]rune(s))
}
