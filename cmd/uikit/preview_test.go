package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubTerminal(t *testing.T, interactive bool) {
	t.Helper()
	original := termIsTerminal
	t.Cleanup(func() { termIsTerminal = original })
	termIsTerminal = func(int) bool { return interactive }
}

func capturePreviewOptions(t *testing.T) *previewOptions {
	t.Helper()
	original := previewCmdRunner
	t.Cleanup(func() { previewCmdRunner = original })

	captured := &previewOptions{}
	previewCmdRunner = func(cmd *cobra.Command, app *AppContext, opts previewOptions) error {
		*captured = opts
		return nil
	}
	return captured
}

func TestPreviewRequiresTerminal(t *testing.T) {
	stubTerminal(t, false)
	capturePreviewOptions(t)

	root := newRootCmd()
	root.SetArgs([]string{"preview"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestPreviewBufferedOutputIsNotATerminal(t *testing.T) {
	stubTerminal(t, true)
	capturePreviewOptions(t)

	_, _, err := executeCommand(newRootCmd(), "preview")
	require.Error(t, err)
}

func TestPreviewOptions(t *testing.T) {
	stubTerminal(t, true)
	path := writeConfig(t, "preview:\n  theme: light\n")

	tests := []struct {
		name      string
		args      []string
		wantTheme string
		wantNames []string
	}{
		{name: "default theme", args: []string{"preview"}, wantTheme: "default"},
		{name: "config theme", args: []string{"preview", "--config", path}, wantTheme: "light"},
		{name: "flag theme", args: []string{"preview", "--config", path, "--theme", "dark", "link"}, wantTheme: "dark", wantNames: []string{"link"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captured := capturePreviewOptions(t)

			root := newRootCmd()
			root.SetArgs(tt.args)
			require.NoError(t, root.Execute())

			assert.Equal(t, tt.wantTheme, captured.Theme)
			assert.ElementsMatch(t, tt.wantNames, captured.Examples)
		})
	}
}
