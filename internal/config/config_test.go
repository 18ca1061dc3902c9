package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tuplemap.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, FormatYAML, cfg.Format)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Mapping)
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "mapping: users.yaml\ninput: rows.yaml\nformat: JSON\nlog_level: debug\n")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Mapping:  "users.yaml",
		Input:    "rows.yaml",
		Format:   FormatJSON,
		LogLevel: "debug",
	}, cfg)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.Error(t, err)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, "mapping: from-file.yaml\nformat: yaml\n")

	t.Setenv("TUPLEMAP_MAPPING", "from-env.yaml")
	t.Setenv("TUPLEMAP_INPUT", "env-input.yaml")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.String("mapping", "", "")
	fs.String("input", "", "")
	fs.String("format", FormatYAML, "")
	require.NoError(t, fs.Parse([]string{"-format", "json"}))

	cfg, err := Load(path, fs)
	require.NoError(t, err)

	assert.Equal(t, "from-env.yaml", cfg.Mapping, "env overrides file")
	assert.Equal(t, "env-input.yaml", cfg.Input)
	assert.Equal(t, FormatJSON, cfg.Format, "set flags override everything")

	require.NoError(t, fs.Parse([]string{"-mapping", "from-flag.yaml"}))

	cfg, err = Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, "from-flag.yaml", cfg.Mapping)
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "format", content: "format: xml\n"},
		{name: "log level", content: "log_level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeConfig(t, tt.content), nil)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
