package domain

import (
	"errors"
	"testing"
)

// Error tests

func TestDomainError_Error(t *testing.T) {
	// Without cause
	err := DomainError{
		Code:    "TEST_ERROR",
		Message: "Test message",
	}
	expected := "[TEST_ERROR] Test message"
	if err.Error() != expected {
		t.Errorf("Expected '%s', got '%s'", expected, err.Error())
	}

	// With cause
	cause := errors.New("underlying error")
	errWithCause := DomainError{
		Code:    "TEST_ERROR",
		Message: "Test message",
		Cause:   cause,
	}
	expectedWithCause := "[TEST_ERROR] Test message: underlying error"
	if errWithCause.Error() != expectedWithCause {
		t.Errorf("Expected '%s', got '%s'", expectedWithCause, errWithCause.Error())
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := DomainError{
		Code:    "TEST_ERROR",
		Message: "Test message",
		Cause:   cause,
	}

	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Without cause
	errNoCause := DomainError{
		Code:    "TEST_ERROR",
		Message: "Test message",
	}
	if errNoCause.Unwrap() != nil {
		t.Error("Unwrap should return nil when no cause")
	}
}

func TestErrorConstructors(t *testing.T) {
	cause := errors.New("cause")

	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"config", NewConfigError("bad limit", cause), ErrCodeConfig},
		{"source", NewSourceError("fetch failed", cause), ErrCodeSource},
		{"output", NewOutputError("write failed", nil), ErrCodeOutput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			de, ok := tt.err.(DomainError)
			if !ok {
				t.Fatal("Should return DomainError type")
			}
			if de.Code != tt.wantCode {
				t.Errorf("Expected code '%s', got '%s'", tt.wantCode, de.Code)
			}
		})
	}

	if !IsConfigError(NewConfigError("x", nil)) {
		t.Error("IsConfigError should match config errors")
	}
	if IsConfigError(NewSourceError("x", nil)) {
		t.Error("IsConfigError should not match source errors")
	}
	if !IsSourceError(NewSourceError("x", nil)) {
		t.Error("IsSourceError should match source errors")
	}
	if IsSourceError(errors.New("plain")) {
		t.Error("IsSourceError should not match plain errors")
	}
}

// Data model tests

func TestRuleConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     RuleConfig
		wantErr bool
	}{
		{"both positive", RuleConfig{SubjectLimit: 50, DescriptionLimit: 72}, false},
		{"zero subject limit", RuleConfig{SubjectLimit: 0, DescriptionLimit: 72}, true},
		{"zero description limit", RuleConfig{SubjectLimit: 50, DescriptionLimit: 0}, true},
		{"negative subject limit", RuleConfig{SubjectLimit: -1, DescriptionLimit: 72}, true},
		{"both missing", RuleConfig{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if tt.wantErr && !IsConfigError(err) {
				t.Errorf("Expected a config error, got %v", err)
			}
		})
	}
}

func TestCommitVerdict_Passed(t *testing.T) {
	passing := CommitVerdict{CommitID: "abc123"}
	if !passing.Passed() {
		t.Error("Verdict with no violations should pass")
	}

	failing := CommitVerdict{
		CommitID:   "def456",
		Violations: []Violation{{Rule: RuleSubjectMissing, Detail: "subject is empty"}},
	}
	if failing.Passed() {
		t.Error("Verdict with violations should not pass")
	}
}

func TestAggregateResult_ExitCode(t *testing.T) {
	pass := AggregateResult{OverallPass: true}
	if pass.ExitCode() != 0 {
		t.Errorf("Passing result should exit 0, got %d", pass.ExitCode())
	}

	fail := AggregateResult{OverallPass: false}
	if fail.ExitCode() != 1 {
		t.Errorf("Failing result should exit 1, got %d", fail.ExitCode())
	}
}
