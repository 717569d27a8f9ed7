//go:build unix

package archive_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// umask returns the permission bits the process umask clears.
func umask(t *testing.T) os.FileMode {
	t.Helper()

	path := filepath.Join(t.TempDir(), "probe")
	require.NoError(t, os.WriteFile(path, nil, 0777))

	info, err := os.Stat(path)
	require.NoError(t, err)

	return 0777 &^ info.Mode().Perm()
}
