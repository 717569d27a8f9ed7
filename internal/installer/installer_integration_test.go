package installer_test

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/brunoribeiro127/hugo-cli/internal/archive"
	"github.com/brunoribeiro127/hugo-cli/internal/console"
	"github.com/brunoribeiro127/hugo-cli/internal/fetch"
	"github.com/brunoribeiro127/hugo-cli/internal/installer"
	"github.com/brunoribeiro127/hugo-cli/internal/model"
	"github.com/brunoribeiro127/hugo-cli/internal/resolver"
	"github.com/brunoribeiro127/hugo-cli/internal/system"
)

func tarGz(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)

	for name, body := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     name,
			Mode:     0o755,
			Size:     int64(len(body)),
			Typeflag: tar.TypeReg,
		}))
		_, err := tw.Write([]byte(body))
		require.NoError(t, err)
	}

	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())

	return buf.Bytes()
}

func TestArchiveInstaller_Integration(t *testing.T) {
	archives := map[string][]byte{
		"/v0.45.1/hugo_0.45.1_Linux-64bit.tar.gz": tarGz(t, map[string]string{
			"hugo":      "#!/bin/sh\n",
			"README.md": "readme",
		}),
		"/v0.104.3/hugo_0.104.3_linux-arm64.tar.gz": tarGz(t, map[string]string{
			"hugo_0.104.3_linux-arm64/hugo":      "#!/bin/sh\n",
			"hugo_0.104.3_linux-arm64/README.md": "readme",
		}),
	}

	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		body, ok := archives[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write(body)
	}))
	defer server.Close()

	dir := t.TempDir()
	res := resolver.NewResolver(server.URL)
	inst := installer.NewArchiveInstaller(
		installer.Config{InstallDir: dir},
		fetch.NewHTTPDownloader(server.Client(), console.NewReporter(io.Discard, true)),
		archive.NewFileExtractor(),
		system.NewFileSystem(system.NewRuntime()),
		system.NewLocker(10*time.Second),
		console.NewReporter(io.Discard, true),
	)

	legacy, err := res.GetDetails("0.45.1", model.NewTarget("linux", "x64"))
	require.NoError(t, err)
	modern, err := res.GetDetails("0.104.3", model.NewTarget("linux", "arm64"))
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("concurrent-installs-download-once", func(t *testing.T) {
		g, gctx := errgroup.WithContext(ctx)
		for range 4 {
			g.Go(func() error {
				_, err := inst.EnsureInstalled(gctx, legacy)
				return err
			})
		}
		require.NoError(t, g.Wait())

		assert.Equal(t, int32(1), requests.Load())
		assert.FileExists(t, filepath.Join(dir, "hugo_0.45.1_linux_amd64"))
		assert.NoFileExists(t, filepath.Join(dir, "hugo"))
		assert.FileExists(t, filepath.Join(dir, "README.md"))
	})

	t.Run("modern-install", func(t *testing.T) {
		path, err := inst.EnsureInstalled(ctx, modern)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "hugo_0.104.3_linux-arm64", "hugo"), path)
		assert.FileExists(t, path)
		assert.FileExists(t, filepath.Join(dir, "hugo_0.104.3_linux-arm64", "README.md"))
		assert.Equal(t, int32(2), requests.Load())
	})

	t.Run("installed-skips-download", func(t *testing.T) {
		_, err := inst.EnsureInstalled(ctx, modern)
		require.NoError(t, err)
		assert.Equal(t, int32(2), requests.Load())
	})

	t.Run("list-installed", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("executable bit is not tracked on windows")
		}

		installations, err := inst.ListInstalled()
		require.NoError(t, err)
		require.Len(t, installations, 2)
		assert.Equal(t, "0.45.1", installations[0].Version)
		assert.Equal(t, "0.104.3", installations[1].Version)
	})

	t.Run("missing-release", func(t *testing.T) {
		missing, err := res.GetDetails("0.60.0", model.NewTarget("linux", "x64"))
		require.NoError(t, err)

		_, err = inst.EnsureInstalled(ctx, missing)

		var downloadErr *installer.DownloadError
		require.ErrorAs(t, err, &downloadErr)
		assert.ErrorIs(t, err, fetch.ErrUnexpectedStatus)
		assert.NoFileExists(t, filepath.Join(dir, missing.ArchiveName))
	})

	t.Run("uninstall", func(t *testing.T) {
		require.NoError(t, inst.Uninstall(modern))
		assert.NoDirExists(t, filepath.Join(dir, "hugo_0.104.3_linux-arm64"))
		assert.NoFileExists(t, filepath.Join(dir, modern.ArchiveName))

		err := inst.Uninstall(modern)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
