//go:build unix

package repository

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// ErrDataDirLocked is returned when another process holds the data directory.
var ErrDataDirLocked = errors.New("data directory is locked by another process")

const lockFileName = ".lock"

// DirLock is an advisory exclusive lock on a data directory. The guest log
// assumes a single writer process; the lock turns a second bot instance
// pointed at the same directory into a startup error.
type DirLock struct {
	file *os.File
}

// LockDir takes the lock without blocking.
func LockDir(dir string) (*DirLock, error) {
	if err := os.MkdirAll(dir, logDirMode); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, lockFileName), os.O_CREATE|os.O_RDWR, logFileMode)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		_ = f.Close()
		if errors.Is(err, unix.EWOULDBLOCK) {
			return nil, fmt.Errorf("%w: %s", ErrDataDirLocked, dir)
		}
		return nil, fmt.Errorf("lock data directory: %w", err)
	}
	return &DirLock{file: f}, nil
}

// Release drops the lock.
func (l *DirLock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	defer func() { l.file = nil }()
	if err := unix.Flock(int(l.file.Fd()), unix.LOCK_UN); err != nil {
		_ = l.file.Close()
		return fmt.Errorf("unlock data directory: %w", err)
	}
	return l.file.Close()
}
