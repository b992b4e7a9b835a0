package testutil

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// CreateTestFile writes content to path, creating missing parent
// directories. Input files, list files and cache files are all made this way.
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// AssertFileExists fails the test unless path is a regular file.
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	info, err := os.Stat(path)
	switch {
	case err != nil:
		t.Errorf("expected file %s: %v", path, err)
	case !info.Mode().IsRegular():
		t.Errorf("expected %s to be a regular file, mode %v", path, info.Mode())
	}
}

// AssertFileNotExists fails the test if anything exists at path, e.g. a
// cache file that should have been moved away.
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	_, err := os.Stat(path)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected %s to be gone, stat error: %v", path, err)
	}
}

// AssertFileContent compares the bytes at path with want.
func AssertFileContent(t *testing.T, path string, want []byte) {
	t.Helper()

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("content of %s = %q, want %q", path, got, want)
	}
}
