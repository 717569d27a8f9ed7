package system

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// lockPollEvery is the interval between two lock attempts.
const lockPollEvery = 100 * time.Millisecond

// ErrLockTimeout is returned when a lock cannot be acquired before the
// timeout expires.
var ErrLockTimeout = errors.New("timed out waiting for lock")

// UnlockFunc is a function that releases a lock.
type UnlockFunc func() error

// Locker is the interface for advisory file locks shared between processes.
type Locker interface {
	// Lock acquires an exclusive lock on the file at the given path, creating
	// it if needed. It blocks until the lock is acquired, the timeout expires
	// or the context is done.
	Lock(ctx context.Context, path string) (UnlockFunc, error)
}

// locker is the default implementation of the Locker interface.
type locker struct {
	timeout time.Duration
}

// NewLocker creates a new Locker that waits at most timeout for a lock.
func NewLocker(timeout time.Duration) Locker {
	return &locker{
		timeout: timeout,
	}
}

// Lock acquires an exclusive lock on the file at the given path. It returns
// ErrLockTimeout if another holder keeps the lock for longer than the
// timeout.
func (l *locker) Lock(ctx context.Context, path string) (UnlockFunc, error) {
	logger := slog.Default().With("path", path)

	//nolint:mnd // lock files are not secret
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		logger.ErrorContext(ctx, "error while opening lock file", "err", err)
		return nil, err
	}

	deadline := time.Now().Add(l.timeout)
	for {
		var acquired bool
		if acquired, err = tryLockFile(file); err != nil {
			_ = file.Close()
			logger.ErrorContext(ctx, "error while acquiring lock", "err", err)
			return nil, err
		}

		if acquired {
			break
		}

		if time.Now().After(deadline) {
			_ = file.Close()
			err = fmt.Errorf("%w after %s: %s", ErrLockTimeout, l.timeout, path)
			logger.ErrorContext(ctx, "error while acquiring lock", "err", err)
			return nil, err
		}

		logger.DebugContext(ctx, "lock busy, waiting")

		select {
		case <-ctx.Done():
			_ = file.Close()
			return nil, ctx.Err()
		case <-time.After(lockPollEvery):
		}
	}

	unlock := func() error {
		if unlockErr := unlockFile(file); unlockErr != nil {
			_ = file.Close()
			logger.Error("error while releasing lock", "err", unlockErr)
			return unlockErr
		}

		return file.Close()
	}

	return unlock, nil
}
