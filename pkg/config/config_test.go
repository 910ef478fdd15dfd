// Test Type: Unit Test
// Description: Tests for configuration loading and validation

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/regexkit/pkg/errors"
	"github.com/arthur-debert/regexkit/pkg/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the XDG config dir at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadLayers(t *testing.T) {
	t.Run("xdg_file", func(t *testing.T) {
		dir := isolate(t)
		writeConfig(t, filepath.Join(dir, "regexkit", "config.toml"), `
[engine]
default = "regexp2"
match_timeout = "250ms"

[grammar]
paths = ["grammars", "vendor/grammars"]
`)
		cfg, err := Load(LoadOptions{})
		require.NoError(t, err)
		assert.Equal(t, "regexp2", cfg.Engine.Default)
		assert.Equal(t, 250*time.Millisecond, cfg.Engine.MatchTimeout)
		assert.Equal(t, []string{"grammars", "vendor/grammars"}, cfg.Grammar.Paths)
		// untouched sections keep their defaults
		assert.Equal(t, "auto", cfg.Output.Format)
		assert.True(t, cfg.Logging.File)
	})

	t.Run("explicit_path", func(t *testing.T) {
		isolate(t)
		path := filepath.Join(t.TempDir(), "custom.toml")
		writeConfig(t, path, "[output]\nformat = \"json\"\nwidth = 72\n")

		cfg, err := Load(LoadOptions{Path: path})
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Output.Format)
		assert.Equal(t, 72, cfg.Output.Width)
	})

	t.Run("env_overrides_file", func(t *testing.T) {
		dir := isolate(t)
		writeConfig(t, filepath.Join(dir, "regexkit", "config.toml"), "[engine]\ndefault = \"regexp2\"\n")
		t.Setenv("REGEXKIT_ENGINE_DEFAULT", "coregex")
		t.Setenv("REGEXKIT_ENGINE_MATCH_TIMEOUT", "2s")
		t.Setenv("REGEXKIT_GRAMMAR_PATHS", "a,b")
		t.Setenv("REGEXKIT_LOGGING_FILE", "false")

		cfg, err := Load(LoadOptions{})
		require.NoError(t, err)
		assert.Equal(t, "coregex", cfg.Engine.Default)
		assert.Equal(t, 2*time.Second, cfg.Engine.MatchTimeout)
		assert.Equal(t, []string{"a", "b"}, cfg.Grammar.Paths)
		assert.False(t, cfg.Logging.File)
	})

	t.Run("overrides_win", func(t *testing.T) {
		isolate(t)
		t.Setenv("REGEXKIT_OUTPUT_FORMAT", "json")

		cfg, err := Load(LoadOptions{Overrides: map[string]interface{}{
			"output.format":  "text",
			"engine.default": "regexp2",
		}})
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.Output.Format)
		assert.Equal(t, "regexp2", cfg.Engine.Default)
	})
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.ErrorCode
	}{
		{"bad_toml", "[engine\n", errors.ErrConfigParse},
		{"bad_engine", "[engine]\ndefault = \"pcre\"\n", errors.ErrConfigValid},
		{"bad_format", "[output]\nformat = \"yaml\"\n", errors.ErrConfigValid},
		{"negative_width", "[output]\nwidth = -1\n", errors.ErrConfigValid},
		{"bad_duration", "[engine]\nmatch_timeout = \"soon\"\n", errors.ErrConfigParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := filepath.Join(t.TempDir(), "config.toml")
			writeConfig(t, path, tt.content)

			_, err := Load(LoadOptions{Path: path})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}

	t.Run("missing_explicit_file", func(t *testing.T) {
		isolate(t)
		_, err := Load(LoadOptions{Path: filepath.Join(t.TempDir(), "nope.toml")})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "engine.match_timeout", envKey("REGEXKIT_ENGINE_MATCH_TIMEOUT"))
	assert.Equal(t, "output.format", envKey("REGEXKIT_OUTPUT_FORMAT"))
}

func TestPatternOptions(t *testing.T) {
	cfg := Default()
	cfg.Engine.Default = "coregex"
	cfg.Engine.MatchTimeout = time.Second

	re, err := pattern.CompileRegexp(`a+`, cfg.PatternOptions()...)
	require.NoError(t, err)
	assert.Equal(t, pattern.EngineCoregex, re.Engine())

	re, err = pattern.CompileRegexp(`a+`, Default().PatternOptions()...)
	require.NoError(t, err)
	assert.Equal(t, pattern.EngineRegexp2, re.Engine())
}

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()
	assert.Contains(t, content, "[engine]")
	assert.Contains(t, content, `# default = "auto"`)
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "[") {
			continue
		}
		t.Errorf("uncommented value line: %q", line)
	}
}
