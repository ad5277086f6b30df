// Package testutil provides helper functions for testing commitgate components
package testutil

import (
	"testing"

	"github.com/commitgate/commitgate/domain"
)

// Commit builds a RawCommit for tests
func Commit(id, message string) domain.RawCommit {
	return domain.RawCommit{ID: id, Message: message}
}

// Limits builds a RuleConfig for tests
func Limits(subject, description int) domain.RuleConfig {
	return domain.RuleConfig{SubjectLimit: subject, DescriptionLimit: description}
}

// AssertNoError fails the test if err is not nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}
