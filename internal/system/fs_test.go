package system_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunoribeiro127/hugo-cli/internal/system"
)

func TestFileSystem_CreateDir(t *testing.T) {
	fs := system.NewFileSystem(nil)

	tempDir := t.TempDir()
	dir := filepath.Join(tempDir, "hugo-cli", "nested")

	err := fs.CreateDir(dir, 0755)
	require.NoError(t, err)

	stat, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())

	err = fs.CreateDir(dir, 0755)
	require.NoError(t, err)
}

func TestFileSystem_Exists(t *testing.T) {
	fs := system.NewFileSystem(nil)

	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "hugo")

	exists, err := fs.Exists(file)
	require.NoError(t, err)
	assert.False(t, exists)

	err = os.WriteFile(file, []byte{}, 0755)
	require.NoError(t, err)

	exists, err = fs.Exists(file)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = fs.Exists(tempDir)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFileSystem_IsExecutable(t *testing.T) {
	fs := system.NewFileSystem(system.NewRuntime())

	tempDir := t.TempDir()

	err := os.Mkdir(filepath.Join(tempDir, "dir"), 0700)
	require.NoError(t, err)
	assert.False(t, fs.IsExecutable(filepath.Join(tempDir, "dir")))
	assert.False(t, fs.IsExecutable(filepath.Join(tempDir, "missing")))

	name := "hugo"
	if runtime.GOOS == "windows" {
		name = "hugo.exe"
	}

	err = os.WriteFile(filepath.Join(tempDir, name), []byte{}, 0755)
	require.NoError(t, err)
	assert.True(t, fs.IsExecutable(filepath.Join(tempDir, name)))

	if runtime.GOOS != "windows" {
		err = os.WriteFile(filepath.Join(tempDir, "README.md"), []byte{}, 0644)
		require.NoError(t, err)
		assert.False(t, fs.IsExecutable(filepath.Join(tempDir, "README.md")))
	}
}

func TestFileSystem_ListDir(t *testing.T) {
	fs := system.NewFileSystem(nil)

	tempDir := t.TempDir()

	err := os.Mkdir(filepath.Join(tempDir, "hugo_0.104.3_linux-amd64"), 0700)
	require.NoError(t, err)

	err = os.WriteFile(filepath.Join(tempDir, "hugo_0.45.1_linux_amd64"), []byte{}, 0755)
	require.NoError(t, err)

	names, err := fs.ListDir(tempDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"hugo_0.104.3_linux-amd64", "hugo_0.45.1_linux_amd64"}, names)

	_, err = fs.ListDir(filepath.Join(tempDir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileSystem_Remove(t *testing.T) {
	fs := system.NewFileSystem(nil)

	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "hugo")

	err := os.WriteFile(file, []byte{}, 0755)
	require.NoError(t, err)

	err = fs.Remove(file)
	require.NoError(t, err)

	_, err = os.Stat(file)
	assert.ErrorIs(t, err, os.ErrNotExist)

	err = fs.Remove(file)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileSystem_RemoveAll(t *testing.T) {
	fs := system.NewFileSystem(nil)

	tempDir := t.TempDir()
	dir := filepath.Join(tempDir, "hugo_0.104.3_linux-amd64")

	err := os.Mkdir(dir, 0700)
	require.NoError(t, err)

	err = os.WriteFile(filepath.Join(dir, "hugo"), []byte{}, 0755)
	require.NoError(t, err)

	err = fs.RemoveAll(dir)
	require.NoError(t, err)

	_, err = os.Stat(dir)
	assert.ErrorIs(t, err, os.ErrNotExist)

	err = fs.RemoveAll(dir)
	require.NoError(t, err)
}
