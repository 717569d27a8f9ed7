package system_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunoribeiro127/hugo-cli/internal/system"
)

func TestLocker_Lock(t *testing.T) {
	locker := system.NewLocker(time.Second)
	path := filepath.Join(t.TempDir(), "hugo_0.104.3_linux-amd64.tar.gz.lock")

	unlock, err := locker.Lock(context.Background(), path)
	require.NoError(t, err)
	assert.FileExists(t, path)

	require.NoError(t, unlock())

	unlock, err = locker.Lock(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, unlock())
}

func TestLocker_Lock_Timeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hugo.lock")

	holder := system.NewLocker(time.Second)
	unlock, err := holder.Lock(context.Background(), path)
	require.NoError(t, err)
	defer func() { _ = unlock() }()

	waiter := system.NewLocker(250 * time.Millisecond)
	_, err = waiter.Lock(context.Background(), path)
	assert.ErrorIs(t, err, system.ErrLockTimeout)
}

func TestLocker_Lock_ReleasedWhileWaiting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hugo.lock")

	holder := system.NewLocker(time.Second)
	unlock, err := holder.Lock(context.Background(), path)
	require.NoError(t, err)

	go func() {
		time.Sleep(200 * time.Millisecond)
		_ = unlock()
	}()

	waiter := system.NewLocker(5 * time.Second)
	unlockWaiter, err := waiter.Lock(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, unlockWaiter())
}

func TestLocker_Lock_ContextCanceled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hugo.lock")

	holder := system.NewLocker(time.Second)
	unlock, err := holder.Lock(context.Background(), path)
	require.NoError(t, err)
	defer func() { _ = unlock() }()

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	waiter := system.NewLocker(time.Minute)
	_, err = waiter.Lock(ctx, path)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLocker_Lock_MissingDir(t *testing.T) {
	locker := system.NewLocker(time.Second)
	path := filepath.Join(t.TempDir(), "missing", "hugo.lock")

	_, err := locker.Lock(context.Background(), path)
	assert.Error(t, err)
}
