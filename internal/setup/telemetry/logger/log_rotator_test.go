package logger_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/robalyx/warden/internal/setup/telemetry/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestLogRotatorCompacts(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "main.log")

	rotator, err := logger.NewLogRotator(path, 3)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rotator.Close() })

	for i := 1; i <= 5; i++ {
		_, err := fmt.Fprintf(rotator, "line %d\n", i)
		require.NoError(t, err)
	}

	assert.Len(t, readLines(t, path), 5)

	_, err = fmt.Fprintf(rotator, "line 6\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"line 4", "line 5", "line 6"}, readLines(t, path))

	// Writes after compaction land in the new file
	_, err = fmt.Fprintf(rotator, "line 7\nline 8\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"line 4", "line 5", "line 6", "line 7", "line 8"}, readLines(t, path))
}

func TestRingBuffer(t *testing.T) {
	t.Parallel()

	rb := logger.NewRingBuffer(2)
	assert.Nil(t, rb.Lines())

	rb.Add("a")
	rb.Add("b")
	rb.Add("c")

	assert.Equal(t, 2, rb.Len())
	assert.Equal(t, []string{"b", "c"}, rb.Lines())
}
