package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 200, c.ExcerptMaxLength)
	assert.Equal(t, 200, c.WordsPerMinute)
	assert.Equal(t, int64(5<<20), c.MaxFileBytes)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
	assert.Equal(t, filepath.Join(home, ".hubloom", "hubs"), c.HubsDir)
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")

	c, err := Load(path)
	require.NoError(t, err)
	c.WordsPerMinute = 180
	c.DefaultHub = "team"
	require.NoError(t, Save(c, path))

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 180, again.WordsPerMinute)
	assert.Equal(t, "team", again.DefaultHub)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("HUBLOOM_EXCERPT_MAX_LENGTH", "120")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 120, c.ExcerptMaxLength)
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := Load("")
	require.NoError(t, err)

	bad := *c
	bad.LogFormat = "xml"
	assert.Error(t, bad.Validate())

	bad = *c
	bad.WordsPerMinute = -5
	assert.Error(t, bad.Validate())
	assert.Error(t, Save(&bad, filepath.Join(t.TempDir(), "c.yaml")))
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("words_per_minute: [oops\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestRenderSettings(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("render_extensions: [table, footnote]\nhard_wraps: true\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"table", "footnote"}, c.RenderExtensions)
	assert.True(t, c.HardWraps)
	assert.False(t, c.SafeMode)

	c.RenderExtensions = []string{"mermaid"}
	assert.Error(t, c.Validate())
}
