package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration or flag validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// TaskError reports an external task that could not be launched or exited
// with a non-zero status.
type TaskError struct {
	Task   string
	Status int
	Err    error
}

// NewTaskError constructs a TaskError for the named task.
func NewTaskError(task string, status int, err error) error {
	return &TaskError{Task: task, Status: status, Err: err}
}

func (e *TaskError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("task %s failed with status %d: %v", e.Task, e.Status, e.Err)
	}
	return fmt.Sprintf("task %s failed with status %d", e.Task, e.Status)
}

// Unwrap exposes the root error.
func (e *TaskError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ExitCode returns the process status the task finished with.
func (e *TaskError) ExitCode() int {
	if e == nil {
		return 0
	}
	return e.Status
}

// AuditError reports accessibility violations found in rendered output.
type AuditError struct {
	Target     string
	Violations int
}

// NewAuditError constructs an AuditError.
func NewAuditError(target string, violations int) error {
	return &AuditError{Target: target, Violations: violations}
}

func (e *AuditError) Error() string {
	if e == nil {
		return ""
	}
	if e.Target != "" {
		return fmt.Sprintf("audit error [%s]: %d violation(s)", e.Target, e.Violations)
	}
	return fmt.Sprintf("audit error: %d violation(s)", e.Violations)
}
