//go:build !unix && !windows

package system

import "os"

// tryLockFile always succeeds on platforms without advisory locks.
func tryLockFile(_ *os.File) (bool, error) {
	return true, nil
}

func unlockFile(_ *os.File) error {
	return nil
}
