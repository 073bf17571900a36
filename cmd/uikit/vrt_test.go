package main

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	uikiterrors "github.com/alexisbeaulieu97/uikit/pkg/errors"
)

const testAppCodeEnv = "UIKIT_TEST_APP_CODE"

func captureVRTOptions(t *testing.T) *vrtOptions {
	t.Helper()
	original := vrtCmdRunner
	t.Cleanup(func() { vrtCmdRunner = original })

	captured := &vrtOptions{}
	vrtCmdRunner = func(cmd *cobra.Command, app *AppContext, opts vrtOptions) error {
		*captured = opts
		return nil
	}
	return captured
}

func TestVRTCommandPortSelection(t *testing.T) {
	path := writeConfig(t, "vrt:\n  port: \"7000\"\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "default", args: []string{"vrt"}, want: "9001"},
		{name: "from config", args: []string{"vrt", "--config", path}, want: "7000"},
		{name: "flag wins over config", args: []string{"vrt", "--config", path, "-p", "6006"}, want: "6006"},
		{name: "long flag", args: []string{"vrt", "--port", "6007"}, want: "6007"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captured := captureVRTOptions(t)

			_, _, err := executeCommand(newRootCmd(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, captured.Port)
		})
	}
}

func TestVRTCommandRejectsInvalidPort(t *testing.T) {
	captureVRTOptions(t)

	for _, port := range []string{"0", "65536", "abc", ""} {
		_, _, err := executeCommand(newRootCmd(), "vrt", "-p", port)
		require.Error(t, err, port)
		assert.Contains(t, err.Error(), "invalid port")
	}
}

func TestVRTCommandForwardedArguments(t *testing.T) {
	path := writeConfig(t, "vrt:\n  port: \"7000\"\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "port after dashes", args: []string{"vrt", "--", "-p", "6008"}, want: "6008"},
		{name: "flag without value", args: []string{"vrt", "--", "-p"}, want: "9001"},
		{name: "no port flag", args: []string{"vrt", "--config", path, "--", "--ci"}, want: "9001"},
		{name: "explicit flag wins", args: []string{"vrt", "-p", "6010", "--", "-p", "6008"}, want: "6010"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captured := captureVRTOptions(t)

			_, _, err := executeCommand(newRootCmd(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, captured.Port)
		})
	}
}

func TestVRTCommandWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	captured := captureVRTOptions(t)

	_, _, err := executeCommand(newRootCmd(), "vrt", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, dir, captured.Dir)

	_, _, err = executeCommand(newRootCmd(), "vrt", "--dir", filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "working directory does not exist")

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, _, err = executeCommand(newRootCmd(), "vrt", "--dir", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a directory")
}

// fakeChromatic writes a shell script standing in for the chromatic CLI and
// a config pointing the vrt command at it.
func fakeChromatic(t *testing.T, envFile string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "chromatic")
	require.NoError(t, os.WriteFile(script, []byte(`#!/bin/sh
echo "args: $*"
echo "code: $CHROMATIC_APP_CODE"
exit ${FAKE_VRT_STATUS:-0}
`), 0o755))

	cfg := "logging:\n  human_readable: false\n" +
		"vrt:\n" +
		"  binary: " + script + "\n" +
		"  app_code_env: " + testAppCodeEnv + "\n" +
		"  env_file: " + envFile + "\n" +
		"  extra_args: [\"--debug\"]\n"
	return writeConfig(t, cfg)
}

func unsetAppCode(t *testing.T) {
	t.Helper()
	require.NoError(t, os.Unsetenv(testAppCodeEnv))
	t.Cleanup(func() { _ = os.Unsetenv(testAppCodeEnv) })
}

func TestVRTCommandRunsChromatic(t *testing.T) {
	unsetAppCode(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(testAppCodeEnv+"=from-dotenv\n"), 0o644))
	path := fakeChromatic(t, envFile)

	stdout, _, err := executeCommand(newRootCmd(), "vrt", "--config", path, "-p", "6006")
	require.NoError(t, err)

	assert.Contains(t, stdout, "args: test --storybook-port 6006 --no-interactive --exit-zero-on-changes --debug")
	assert.Contains(t, stdout, "code: from-dotenv")
	assert.Contains(t, stdout, "[chromatic]")
}

func TestVRTCommandEnvironmentWinsOverEnvFile(t *testing.T) {
	t.Setenv(testAppCodeEnv, "from-env")
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(testAppCodeEnv+"=from-dotenv\n"), 0o644))
	path := fakeChromatic(t, envFile)

	stdout, _, err := executeCommand(newRootCmd(), "vrt", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "code: from-env")
}

func TestVRTCommandWarnsWithoutAppCode(t *testing.T) {
	unsetAppCode(t)
	path := fakeChromatic(t, filepath.Join(t.TempDir(), "missing.env"))

	stdout, stderr, err := executeCommand(newRootCmd(), "vrt", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "code: \n")
	assert.Contains(t, stderr, testAppCodeEnv+" is not set")
}

func TestVRTCommandPropagatesExitStatus(t *testing.T) {
	unsetAppCode(t)
	t.Setenv("FAKE_VRT_STATUS", "3")
	path := fakeChromatic(t, filepath.Join(t.TempDir(), "missing.env"))

	_, _, err := executeCommand(newRootCmd(), "vrt", "--config", path)
	require.Error(t, err)

	var taskErr *uikiterrors.TaskError
	require.ErrorAs(t, err, &taskErr)
	assert.Equal(t, "chromatic", taskErr.Task)
	assert.Equal(t, 3, exitCode(err))
}

func TestVRTCommandMissingBinary(t *testing.T) {
	unsetAppCode(t)
	path := writeConfig(t, "vrt:\n  binary: uikit-test-no-such-binary\n  env_file: \"\"\n")
	t.Chdir(t.TempDir())

	_, _, err := executeCommand(newRootCmd(), "vrt", "--config", path)
	require.Error(t, err)
	assert.Equal(t, 127, exitCode(err))
}

func TestVRTCommandFindsChromaticInProjectDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	unsetAppCode(t)

	project, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	bin := filepath.Join(project, "node_modules", ".bin")
	require.NoError(t, os.MkdirAll(bin, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(bin, "uikit-test-chromatic"), []byte(`#!/bin/sh
echo "cwd: $(pwd -P)"
`), 0o755))

	path := writeConfig(t, "vrt:\n  binary: uikit-test-chromatic\n  env_file: \"\"\n")

	stdout, _, err := executeCommand(newRootCmd(), "vrt", "--config", path, "--dir", project)
	require.NoError(t, err)
	assert.Contains(t, stdout, "cwd: "+project)
}
