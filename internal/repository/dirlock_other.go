//go:build !unix

package repository

import (
	"errors"
	"fmt"
	"os"
)

var ErrDataDirLocked = errors.New("data directory is locked by another process")

// DirLock is a no-op where flock is unavailable.
type DirLock struct{}

func LockDir(dir string) (*DirLock, error) {
	if err := os.MkdirAll(dir, logDirMode); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &DirLock{}, nil
}

func (l *DirLock) Release() error {
	return nil
}
