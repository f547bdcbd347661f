package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "combined.txt", cfg.Output.Path)
	assert.Equal(t, ".gitignore", cfg.Scan.IgnoreFile)
	assert.Equal(t, int64(0), cfg.Scan.MaxFileSize)
	assert.False(t, cfg.Scan.FollowSymlinks)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `
version: 1
output:
  path: all.txt
scan:
  ignore_file: .codecatignore
  max_file_size: 1048576
  follow_symlinks: true
watch:
  debounce: 500ms
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "all.txt", cfg.Output.Path)
	assert.Equal(t, ".codecatignore", cfg.Scan.IgnoreFile)
	assert.Equal(t, int64(1048576), cfg.Scan.MaxFileSize)
	assert.True(t, cfg.Scan.FollowSymlinks)
	assert.Equal(t, "debug", cfg.Log.Level)

	d, err := cfg.DebounceDuration()
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, d)
}

func TestLoad_PartialFileKeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("output:\n  path: out.txt\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "out.txt", cfg.Output.Path)
	assert.Equal(t, ".gitignore", cfg.Scan.IgnoreFile)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("output: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{name: "defaults are valid", mutate: func(*Config) {}, valid: true},
		{name: "empty output path", mutate: func(c *Config) { c.Output.Path = "" }, valid: false},
		{name: "empty ignore file", mutate: func(c *Config) { c.Scan.IgnoreFile = "" }, valid: false},
		{name: "negative max file size", mutate: func(c *Config) { c.Scan.MaxFileSize = -1 }, valid: false},
		{name: "bad debounce", mutate: func(c *Config) { c.Watch.Debounce = "soon" }, valid: false},
		{name: "negative debounce", mutate: func(c *Config) { c.Watch.Debounce = "-1s" }, valid: false},
		{name: "empty debounce", mutate: func(c *Config) { c.Watch.Debounce = "" }, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
