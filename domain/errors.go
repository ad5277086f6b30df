package domain

import "fmt"

// Error codes for the error taxonomy
const (
	// ErrCodeConfig marks missing or invalid configuration.
	// Fatal: no commit is evaluated and no partial report is produced.
	ErrCodeConfig = "CONFIG_ERROR"

	// ErrCodeSource marks a failure to retrieve the commit list
	ErrCodeSource = "SOURCE_UNAVAILABLE"

	// ErrCodeOutput marks a failure to render or write the report
	ErrCodeOutput = "OUTPUT_ERROR"
)

// DomainError is an error with a stable code and an optional cause.
// Rule violations are never DomainErrors; they are ordinary data in a verdict.
type DomainError struct {
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface
func (e DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e DomainError) Unwrap() error {
	return e.Cause
}

// NewDomainError creates a DomainError with an arbitrary code
func NewDomainError(code, message string, cause error) error {
	return DomainError{Code: code, Message: message, Cause: cause}
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) error {
	return NewDomainError(ErrCodeConfig, message, cause)
}

// NewSourceError creates a commit-source error
func NewSourceError(message string, cause error) error {
	return NewDomainError(ErrCodeSource, message, cause)
}

// NewOutputError creates an output error
func NewOutputError(message string, cause error) error {
	return NewDomainError(ErrCodeOutput, message, cause)
}

// IsConfigError reports whether err is a configuration error
func IsConfigError(err error) bool {
	return hasCode(err, ErrCodeConfig)
}

// IsSourceError reports whether err is a commit-source error
func IsSourceError(err error) bool {
	return hasCode(err, ErrCodeSource)
}

func hasCode(err error, code string) bool {
	de, ok := err.(DomainError)
	return ok && de.Code == code
}
