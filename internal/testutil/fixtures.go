package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// LineFitX and LineFitY are the three-point line fit used across tests.
// The least-squares solution is intercept 1/3, slope 3/2.
const (
	LineFitX = "1 1\n1 2\n1 3\n"
	LineFitY = "2\n3\n5\n"
)

// WriteFile writes content to name inside a fresh temp directory and returns
// the full path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	return WriteFileIn(t, t.TempDir(), name, content)
}

// WriteFileIn writes content to name inside dir and returns the full path.
func WriteFileIn(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
