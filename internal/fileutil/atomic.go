// Package fileutil writes files so readers never observe a partial write.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrExists is returned by WriteNewFileAtomic when the target already exists.
var ErrExists = fs.ErrExist

// WriteFileAtomic writes data to a temp file in the target's directory, syncs
// it and renames it over filename. An existing file is replaced.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmpPath, err := writeTemp(filename, data, perm)
	if err != nil {
		return err
	}

	if err := os.Rename(tmpPath, filename); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename %s: %w", filepath.Base(tmpPath), err)
	}
	return nil
}

// WriteNewFileAtomic is like WriteFileAtomic but fails with ErrExists instead
// of replacing an existing file. The check and the publish are a single
// link(2), so a concurrent writer cannot be clobbered.
func WriteNewFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmpPath, err := writeTemp(filename, data, perm)
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmpPath) }()

	if err := os.Link(tmpPath, filename); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s: %w", filename, ErrExists)
		}
		return fmt.Errorf("link %s: %w", filename, err)
	}
	return nil
}

// writeTemp stages data next to filename so the final rename or link stays on
// one filesystem.
func writeTemp(filename string, data []byte, perm os.FileMode) (string, error) {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	f, err := os.CreateTemp(dir, "."+base+".tmp.*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := f.Name()

	fail := func(op string, err error) (string, error) {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("%s temp file: %w", op, err)
	}

	if _, err := f.Write(data); err != nil {
		return fail("write", err)
	}
	if err := f.Sync(); err != nil {
		return fail("sync", err)
	}
	if err := f.Chmod(perm); err != nil {
		return fail("chmod", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("close temp file: %w", err)
	}
	return tmpPath, nil
}
