package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fix.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "README.md", cfg.Target)
	assert.Equal(t, "utf-8", cfg.Encoding)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Console)
	assert.Empty(t, cfg.MetricsTextfile)
	assert.Empty(t, cfg.ExtraPairs)
	assert.False(t, cfg.DryRun)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
target: docs/INDEX.md
encoding: windows-1252
metrics_textfile: /tmp/fix.prom
log:
  level: debug
  console: false
extra_pairs:
  - name: roadmap
    pattern: "### ? Roadmap"
    replacement: "### :world_map: Roadmap"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "docs/INDEX.md", cfg.Target)
	assert.Equal(t, "windows-1252", cfg.Encoding)
	assert.Equal(t, "/tmp/fix.prom", cfg.MetricsTextfile)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Log.Console)
	require.Len(t, cfg.ExtraPairs, 1)
	assert.Equal(t, PairConfig{
		Name:        "roadmap",
		Pattern:     "### ? Roadmap",
		Replacement: "### :world_map: Roadmap",
	}, cfg.ExtraPairs[0])
}

func TestLoadConfigDiscoversDotFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".readme-emoji-fix.yaml"), []byte("target: CHANGELOG.md\n"), 0o644))

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "CHANGELOG.md", cfg.Target)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, "target: from-file.md\n")
	t.Setenv("READMEFIX_TARGET", "from-env.md")
	t.Setenv("READMEFIX_LOG_LEVEL", "error")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.md", cfg.Target)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "target: [unterminated\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.ExtraPairs = []PairConfig{{Name: "blank", Replacement: "x"}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extra_pairs[0]")

	cfg = Default()
	cfg.Target = "  "
	assert.EqualError(t, cfg.Validate(), "target is not configured")

	cfg = Default()
	cfg.Encoding = ""
	assert.EqualError(t, cfg.Validate(), "encoding is not configured")
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
