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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.TestsEnabled())
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultStandard, cfg.CXXStandard)
}

func TestLoadConfigEmptyFile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
author: Jane Doe
cxx_standard: 20
project_type: library
tests: false
git:
  commit: true
extra_packages: [ccache]
skip: ["docs/**"]
gitignore_extra: [".cache/"]
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", cfg.Author)
	assert.Equal(t, 20, cfg.CXXStandard)
	assert.Equal(t, TypeLibrary, cfg.ProjectType)
	assert.False(t, cfg.TestsEnabled())
	assert.True(t, cfg.Git.Commit)
	assert.Equal(t, DefaultCommitMessage, cfg.Git.Message)
	assert.Equal(t, []string{"ccache"}, cfg.ExtraPackages)
	assert.Equal(t, []string{"docs/**"}, cfg.Skip)
	assert.Equal(t, []string{".cache/"}, cfg.GitignoreExtra)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "bad_standard", body: "cxx_standard: 18\n", want: "unsupported C++ standard 18"},
		{name: "bad_type", body: "project_type: plugin\n", want: `unknown project type "plugin"`},
		{name: "unknown_field", body: "cxx_standad: 17\n", want: "parsing config"},
		{name: "bad_yaml", body: "author: [\n", want: "parsing config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateStandard(t *testing.T) {
	for _, std := range SupportedStandards {
		assert.NoError(t, ValidateStandard(std))
	}
	assert.Error(t, ValidateStandard(98))
	assert.Error(t, ValidateStandard(0))
}
