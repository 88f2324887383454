package storage

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// FS implements Provider against the local file system.
type FS struct{}

// NewFS returns the local file system provider.
func NewFS() *FS {
	return &FS{}
}

// IsDir follows symlinks, as cd does.
func (f *FS) IsDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// CanEnter requires an existing directory with search permission for the
// real user, mirroring access(2) with X_OK.
func (f *FS) CanEnter(path string) bool {
	if !f.IsDir(path) {
		return false
	}
	return unix.Access(path, unix.X_OK) == nil
}

// Getwd returns the current working directory.
func (f *FS) Getwd() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("storage: getwd: %w", err)
	}
	return wd, nil
}
