package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	uikiterrors "github.com/alexisbeaulieu97/uikit/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `logging:
  level: debug
  human_readable: false
vrt:
  port: "6006"
  extra_args: ["--debug"]
preview:
  theme: dark
`

	invalidYAML := `vrt:
  port: [1, 2]
`

	badPort := `vrt:
  port: "70000"
`

	badTheme := `preview:
  theme: neon
`

	badEnvName := `vrt:
  app_code_env: "1NOPE"
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.False(t, cfg.Logging.HumanReadable)
				assert.Equal(t, "6006", cfg.VRT.Port)
				assert.Equal(t, []string{"--debug"}, cfg.VRT.ExtraArgs)
				assert.Equal(t, "dark", cfg.Preview.Theme)
			},
		},
		{
			name:     "missing keys keep defaults",
			contents: "preview:\n  theme: light\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "9001", cfg.VRT.Port)
				assert.Equal(t, "chromatic", cfg.VRT.Binary)
				assert.Equal(t, "CHROMATIC_APP_CODE", cfg.VRT.AppCodeEnv)
				assert.True(t, cfg.Logging.HumanReadable)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var parseErr *uikiterrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				assert.Equal(t, 2, parseErr.Line)
			},
		},
		{
			name:     "port out of range",
			contents: badPort,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *uikiterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "vrt.port", validationErr.Field)
				assert.Contains(t, validationErr.Message, "'port'")
			},
		},
		{
			name:     "unknown theme",
			contents: badTheme,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *uikiterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "preview.theme", validationErr.Field)
			},
		},
		{
			name:     "environment variable name",
			contents: badEnvName,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *uikiterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "vrt.appcodeenv", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.contents)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *uikiterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Zero(t, parseErr.Line)
}

func TestLoadExplicitPathMustExist(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadDefaultPathIsOptional(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)

	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultPath), []byte("vrt:\n  port: \"7007\"\n"), 0o600))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "7007", cfg.VRT.Port)
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	err := ValidateConfig(nil)
	var validationErr *uikiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "config", validationErr.Field)
}

func TestValidPort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		port string
		want bool
	}{
		{"9001", true},
		{"1", true},
		{"65535", true},
		{"0", false},
		{"65536", false},
		{"-1", false},
		{"abc", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidPort(tt.port), tt.port)
	}
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
