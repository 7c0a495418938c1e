package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)
	Init()

	cfg, err := Load("")
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Prefix, "default prefix should not be empty")
	assert.Equal(t, ".", cfg.Source)
	assert.Equal(t, "stable", cfg.Channel)
	assert.False(t, cfg.SkipRust)
	assert.False(t, cfg.BuildOnly)
	assert.False(t, cfg.AssumeYes)
}

func TestLoad_ConfigFile(t *testing.T) {
	resetViper(t)
	Init()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "prefix: /tmp/hollowdeep\nskip_rust: true\nchannel: nightly\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Clean("/tmp/hollowdeep"), cfg.Prefix)
	assert.True(t, cfg.SkipRust)
	assert.Equal(t, "nightly", cfg.Channel)
}

func TestLoad_EmptyPrefixStaysEmpty(t *testing.T) {
	resetViper(t)
	Init()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prefix: \"\"\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// Cleaning must not turn "" into "." or Validate could never
	// reject an empty prefix.
	assert.Empty(t, cfg.Prefix)
	assert.Error(t, cfg.Validate())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	resetViper(t)
	Init()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err, "Load() with missing explicit file should error")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  Config{Prefix: "/tmp/x", Source: ".", Channel: "stable"},
		},
		{
			name:    "empty prefix",
			cfg:     Config{Source: ".", Channel: "stable"},
			wantErr: true,
		},
		{
			name:    "empty source",
			cfg:     Config{Prefix: "/tmp/x", Channel: "stable"},
			wantErr: true,
		},
		{
			name:    "bad channel",
			cfg:     Config{Prefix: "/tmp/x", Source: ".", Channel: "weekly"},
			wantErr: true,
		},
		{
			name: "nightly channel",
			cfg:  Config{Prefix: "/tmp/x", Source: ".", Channel: "nightly"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
