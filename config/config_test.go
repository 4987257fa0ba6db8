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
	path := filepath.Join(t.TempDir(), "chunkflow.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
memory:
  max_ram_mb: 2048
  target_fraction: 0.25
watch:
  interval: 2s
  samples: 10
telemetry:
  enabled: true
  path: /tmp/samples.log
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2048.0, cfg.Memory.MaxRAMMB)
	assert.Equal(t, 0.25, cfg.Memory.TargetFraction)
	assert.Equal(t, 2*time.Second, cfg.Watch.Interval)
	assert.Equal(t, 10, cfg.Watch.Samples)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "/tmp/samples.log", cfg.Telemetry.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
memory:
  max_ram_mb: 1024
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1024.0, cfg.Memory.MaxRAMMB)
	assert.Equal(t, Default().Memory.TargetFraction, cfg.Memory.TargetFraction)
	assert.Equal(t, Default().Watch.Interval, cfg.Watch.Interval)
	assert.Equal(t, Default().Logging.Level, cfg.Logging.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "negative ram ceiling",
			content: `
memory:
  max_ram_mb: -100
`,
		},
		{
			name: "fraction above one",
			content: `
memory:
  target_fraction: 1.5
`,
		},
		{
			name: "zero interval",
			content: `
watch:
  interval: 0s
`,
		},
		{
			name:    "malformed yaml",
			content: "memory: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
