//go:build unix

package system

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// tryLockFile tries to acquire an exclusive flock without blocking. It
// returns false if another open file description holds the lock.
func tryLockFile(file *os.File) (bool, error) {
	err := unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, unix.EWOULDBLOCK) || errors.Is(err, unix.EAGAIN) {
		return false, nil
	}

	return false, err
}

// unlockFile releases the flock held on the file.
func unlockFile(file *os.File) error {
	return unix.Flock(int(file.Fd()), unix.LOCK_UN)
}
