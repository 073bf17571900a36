package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError(".uikit.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, ".uikit.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: .uikit.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError(".uikit.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: .uikit.yaml: no such file", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("vrt.port", "must be a port number", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "vrt.port", validationErr.Field)
	require.Equal(t, "validation error: vrt.port: must be a port number", err.Error())

	err = NewValidationError("", "config is empty", nil)
	require.Equal(t, "validation error: config is empty", err.Error())
}

func TestTaskErrorCarriesStatus(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("exit status 3")
	err := NewTaskError("chromatic", 3, underlying)

	var taskErr *TaskError
	require.ErrorAs(t, err, &taskErr)
	require.Equal(t, "chromatic", taskErr.Task)
	require.Equal(t, 3, taskErr.ExitCode())
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "chromatic")
}

func TestNilErrorsAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var taskErr *TaskError
	var auditErr *AuditError

	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, validationErr.Error())
	require.Nil(t, validationErr.Unwrap())
	require.Empty(t, taskErr.Error())
	require.Zero(t, taskErr.ExitCode())
	require.Empty(t, auditErr.Error())
}

func TestAuditErrorMessage(t *testing.T) {
	t.Parallel()

	require.Equal(t, "audit error [icon-only]: 2 violation(s)", NewAuditError("icon-only", 2).Error())
	require.Equal(t, "audit error: 1 violation(s)", NewAuditError("", 1).Error())
}
