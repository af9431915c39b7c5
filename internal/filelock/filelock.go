// Package filelock provides the directory lock and atomic output files used
// when re-flowing a directory in place.
package filelock

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// FileLock wraps a flock file lock for coordinating access to files.
type FileLock struct {
	flock *flock.Flock
	path  string
}

// NewFileLock creates a new file lock for the given path.
// The lock file will be created at the specified path.
func NewFileLock(path string) *FileLock {
	return &FileLock{
		flock: flock.New(path),
		path:  path,
	}
}

// Path returns the lock file path.
func (fl *FileLock) Path() string {
	return fl.path
}

// Lock acquires an exclusive lock on the file, blocking until the lock is available.
// Returns an error if the lock cannot be acquired.
func (fl *FileLock) Lock() error {
	err := fl.flock.Lock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", fl.path, err)
	}
	return nil
}

// TryLock attempts to acquire an exclusive lock on the file without blocking.
// Returns true if the lock was acquired, false if the lock is held by another process.
// Returns an error if the lock operation fails.
func (fl *FileLock) TryLock() (bool, error) {
	acquired, err := fl.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to try lock on %s: %w", fl.path, err)
	}
	return acquired, nil
}

// Unlock releases the lock.
// Returns an error if the unlock operation fails.
func (fl *FileLock) Unlock() error {
	err := fl.flock.Unlock()
	if err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", fl.path, err)
	}
	return nil
}

// AtomicFile is an output file that only appears at its final path once
// Commit succeeds. Content is streamed into a hidden temporary file in the
// same directory, so readers never see a partial write and an aborted pass
// leaves any previous file untouched.
type AtomicFile struct {
	tmp  *os.File
	path string
	perm os.FileMode
	done bool
}

var _ io.Writer = (*AtomicFile)(nil)

// CreateAtomic starts an atomic write to path. The file receives perm on
// Commit.
func CreateAtomic(path string, perm os.FileMode) (*AtomicFile, error) {
	// Temp file must live on the same filesystem for the rename to be atomic
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	return &AtomicFile{tmp: tmp, path: path, perm: perm}, nil
}

// Write writes to the temporary file.
func (af *AtomicFile) Write(p []byte) (int, error) {
	if af.done {
		return 0, os.ErrClosed
	}
	return af.tmp.Write(p)
}

// Commit syncs the temporary file and renames it over the target path.
// On failure the temporary file is removed.
func (af *AtomicFile) Commit() error {
	if af.done {
		return os.ErrClosed
	}
	af.done = true
	tempPath := af.tmp.Name()

	if err := af.tmp.Sync(); err != nil {
		af.discard()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := af.tmp.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, af.perm); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	// On Unix systems, rename is atomic within the same filesystem
	if err := os.Rename(tempPath, af.path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file to %s: %w", af.path, err)
	}
	return nil
}

// Abort discards everything written so far. It is safe to call after Commit.
func (af *AtomicFile) Abort() {
	if af.done {
		return
	}
	af.done = true
	af.discard()
}

func (af *AtomicFile) discard() {
	af.tmp.Close()
	os.Remove(af.tmp.Name())
}
