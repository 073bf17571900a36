package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/uikit/internal/config"
	"github.com/alexisbeaulieu97/uikit/internal/logger"
	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
	uikiterrors "github.com/alexisbeaulieu97/uikit/pkg/errors"
)

func TestAuditCommandPassesCatalog(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(newRootCmd(), "audit")
	require.NoError(t, err)

	examples := components.ButtonExamples()
	assert.Equal(t, len(examples), strings.Count(stdout, "ok    "))
	assert.Contains(t, stdout, "example(s) passed")
}

func TestAuditCommandSelectsExamples(t *testing.T) {
	t.Parallel()

	stdout, _, err := executeCommand(newRootCmd(), "audit", "icon-only", "link")
	require.NoError(t, err)
	assert.Equal(t, "ok    icon-only\nok    link\n2 example(s) passed\n", stdout)

	_, _, err = executeCommand(newRootCmd(), "audit", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown example "missing"`)
}

func TestRunAuditReportsViolations(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	app := &AppContext{Config: &cfg, Log: logger.Nop()}
	cmd := &cobra.Command{}
	out := &bytes.Buffer{}
	cmd.SetOut(out)

	err := runAudit(cmd, app, []components.ButtonExample{
		{Name: "unnamed-icon", Config: components.ButtonConfig{Icon: components.IconTrashSolid}},
	})
	require.Error(t, err)

	var auditErr *uikiterrors.AuditError
	require.ErrorAs(t, err, &auditErr)
	assert.Equal(t, 1, auditErr.Violations)
	assert.Contains(t, out.String(), "FAIL  unnamed-icon")
	assert.Contains(t, out.String(), "control-name")
	assert.Equal(t, 1, exitCode(err))
}
