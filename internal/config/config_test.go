// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[grouping]
movies = true
log_level = "debug"

[resolver]
enabled = true
cache_path = "/tmp/sharecat.db"

[languages]
audio = "Czech"
subtitles = "English"

[output]
format = "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Grouping.Movies)
	assert.Equal(t, "debug", cfg.Grouping.LogLevel)
	assert.True(t, cfg.Resolver.Enabled)
	assert.Equal(t, "/tmp/sharecat.db", cfg.Resolver.CachePath)
	assert.Equal(t, 24*time.Hour, cfg.Resolver.CacheTTL, "default TTL applies")
	assert.Equal(t, "Czech", cfg.Languages.Audio)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("SHARECAT_TEST_CACHE", "/data/cache.db")

	path := writeConfig(t, `
[resolver]
cache_path = "${SHARECAT_TEST_CACHE}"
titles = "${SHARECAT_TEST_UNSET_VAR}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/cache.db", cfg.Resolver.CachePath)
	assert.Equal(t, "${SHARECAT_TEST_UNSET_VAR}", cfg.Resolver.Titles,
		"unset variables are left as-is")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "grouping = [broken")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "info", cfg.Grouping.LogLevel)
	assert.Equal(t, "./data/sharecat.db", cfg.Resolver.CachePath)
	assert.Equal(t, 24*time.Hour, cfg.Resolver.CacheTTL)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Empty(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	t.Run("bad log level", func(t *testing.T) {
		cfg := Default()
		cfg.Grouping.LogLevel = "verbose"
		errs := cfg.Validate()
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "grouping.log_level")
	})

	t.Run("bad output format", func(t *testing.T) {
		cfg := Default()
		cfg.Output.Format = "yaml"
		errs := cfg.Validate()
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "output.format")
	})

	t.Run("unknown audio language", func(t *testing.T) {
		cfg := Default()
		cfg.Languages.Audio = "klingon"
		errs := cfg.Validate()
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "languages.audio")
	})

	t.Run("unknown subtitle language", func(t *testing.T) {
		cfg := Default()
		cfg.Languages.Subtitles = "klingon"
		errs := cfg.Validate()
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "languages.subtitles")
	})

	t.Run("language names and disabled pass", func(t *testing.T) {
		cfg := Default()
		cfg.Languages.Audio = "Czech"
		cfg.Languages.Subtitles = "Disabled"
		assert.Empty(t, cfg.Validate())
	})

	t.Run("missing titles file", func(t *testing.T) {
		cfg := Default()
		cfg.Resolver.Enabled = true
		cfg.Resolver.Titles = filepath.Join(t.TempDir(), "missing.txt")
		errs := cfg.Validate()
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "resolver.titles")
	})
}

func TestDiscover_EnvOverride(t *testing.T) {
	path := writeConfig(t, "[grouping]\nmovies = false\n")
	t.Setenv("SHARECAT_CONFIG", path)

	got, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestDiscover_EnvMissingFile(t *testing.T) {
	t.Setenv("SHARECAT_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))
	_, err := Discover()
	assert.Error(t, err)
}
