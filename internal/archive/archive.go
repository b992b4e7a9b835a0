// Package archive rotates the on-disk translation cache out of the way so the
// next run starts with an empty one.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// sqliteSidecars are the journal files sqlite may keep next to a database.
var sqliteSidecars = []string{"-wal", "-shm", "-journal"}

// ArchiveCache moves the cache file at cachePath into an archive directory
// next to it, adding a timestamp to the name. It returns the archived path.
func ArchiveCache(cachePath string) (string, error) {
	// Check if the cache file exists
	info, err := os.Stat(cachePath)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("translation cache does not exist: %s", cachePath)
	}
	if err != nil {
		return "", fmt.Errorf("failed to inspect translation cache: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("translation cache is a directory: %s", cachePath)
	}

	archiveDir := filepath.Join(filepath.Dir(cachePath), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	ext := filepath.Ext(cachePath)
	stem := strings.TrimSuffix(filepath.Base(cachePath), ext)

	archivePath := filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", stem, time.Now().Format("20060102-150405"), ext))
	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", stem, time.Now().Format("20060102-150405.000000"), ext))
	}

	if err := os.Rename(cachePath, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive translation cache: %w", err)
	}

	for _, suffix := range sqliteSidecars {
		sidecar := cachePath + suffix
		if _, err := os.Stat(sidecar); err == nil {
			if err := os.Rename(sidecar, archivePath+suffix); err != nil {
				return archivePath, fmt.Errorf("failed to archive %s: %w", filepath.Base(sidecar), err)
			}
		}
	}

	return archivePath, nil
}
