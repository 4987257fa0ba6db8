package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInfoCommand(t *testing.T) {
	out, err := runCommand(t, "info")
	require.NoError(t, err)

	assert.Contains(t, out, "total_ram_mb:")
	assert.Contains(t, out, "available_ram_mb:")
	assert.Contains(t, out, "used_ram_mb:")
}

func TestPlanCommand(t *testing.T) {
	t.Run("From flags", func(t *testing.T) {
		out, err := runCommand(t, "plan",
			"--data-size-mb", "1000",
			"--rows", "100000",
			"--max-ram-mb", "500",
			"--target-fraction", "0.1",
		)
		require.NoError(t, err)
		assert.Equal(t, "5000", strings.TrimSpace(out))
	})

	t.Run("From manifest", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dataset.json")
		content := `{"dataset": {"name": "trips", "rows": 100000, "columns": 4, "size_mb": 1000}}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		out, err := runCommand(t, "plan",
			"--manifest", path,
			"--max-ram-mb", "500",
			"--target-fraction", "0.1",
		)
		require.NoError(t, err)
		assert.Equal(t, "5000", strings.TrimSpace(out))
	})

	t.Run("Rejects zero rows", func(t *testing.T) {
		_, err := runCommand(t, "plan",
			"--data-size-mb", "10",
			"--rows", "0",
			"--max-ram-mb", "500",
		)
		assert.Error(t, err)
	})
}

func TestSplitCommand(t *testing.T) {
	t.Run("Vector", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vec.json")
		require.NoError(t, os.WriteFile(path, []byte(`[1,2,3,4,5]`), 0644))

		out, err := runCommand(t, "split", path, "--chunk-size", "2")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 3)
		assert.JSONEq(t, `[1,2]`, lines[0])
		assert.JSONEq(t, `[3,4]`, lines[1])
		assert.JSONEq(t, `[5]`, lines[2])
	})

	t.Run("Matrix", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mat.json")
		require.NoError(t, os.WriteFile(path, []byte(`[[1,2],[3,4],[5,6]]`), 0644))

		out, err := runCommand(t, "split", path, "--chunk-size", "2")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2)
		assert.JSONEq(t, `[[1,2],[3,4]]`, lines[0])
		assert.JSONEq(t, `[[5,6]]`, lines[1])
	})

	t.Run("Rejects invalid chunk size", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vec.json")
		require.NoError(t, os.WriteFile(path, []byte(`[1,2,3]`), 0644))

		_, err := runCommand(t, "split", path, "--chunk-size", "0")
		assert.Error(t, err)
	})

	t.Run("Rejects non-array input", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "obj.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"a": 1}`), 0644))

		_, err := runCommand(t, "split", path, "--chunk-size", "2")
		assert.Error(t, err)
	})
}

func TestWatchCommandFixedSamples(t *testing.T) {
	out, err := runCommand(t, "watch",
		"--samples", "2",
		"--interval", "10ms",
		"--max-ram-mb", "1048576",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "samples_taken:2")
	assert.Contains(t, out, "threshold_exceeded:0")
	assert.Contains(t, out, "peak_process_ram_mb:")
}

func TestRootCommandLoadsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chunkflow.yaml")
	content := `
memory:
  max_ram_mb: 100
  target_fraction: 0.5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	// plan with no --max-ram-mb/--target-fraction picks up the config:
	// floor(100 * 100*0.5 / 10) clamped to 100 rows.
	out, err := runCommand(t, "--config", path, "plan",
		"--data-size-mb", "10",
		"--rows", "100",
	)
	require.NoError(t, err)
	assert.Equal(t, "100", strings.TrimSpace(out))
}

func TestRootCommandRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("memory: ["), 0644))

	_, err := runCommand(t, "--config", path, "info")
	assert.Error(t, err)
}
