// Package persistence stores gob snapshots of the listing catalog so
// a restarted service comes back with its data.
package persistence

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urbanhive/marketplace-search/store"
)

const snapshotFile = "listings.gob"

// SnapshotPath returns the snapshot location inside dataDir.
func SnapshotPath(dataDir string) string {
	return filepath.Join(dataDir, snapshotFile)
}

// SaveSnapshot gob-encodes the store into dataDir. The write goes to a
// temporary file first and is renamed into place so a crash mid-write
// never truncates the previous snapshot.
func SaveSnapshot(dataDir string, serviceStore *store.ServiceStore) error {
	if err := os.MkdirAll(dataDir, 0750); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}

	tmpPath := SnapshotPath(dataDir) + ".tmp"
	file, err := os.Create(tmpPath) // #nosec G304 -- path is derived from the configured data dir, not user input
	if err != nil {
		return fmt.Errorf("failed to create snapshot file %s: %w", tmpPath, err)
	}

	encoder := gob.NewEncoder(file)
	if err := encoder.Encode(serviceStore); err != nil {
		_ = file.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to gob encode listing snapshot: %w", err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close snapshot file %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, SnapshotPath(dataDir)); err != nil {
		return fmt.Errorf("failed to move snapshot into place: %w", err)
	}
	return nil
}

// LoadSnapshot decodes a previously saved snapshot into the store. A
// missing snapshot returns os.ErrNotExist so callers can treat a fresh
// data directory as an empty catalog.
func LoadSnapshot(dataDir string, serviceStore *store.ServiceStore) error {
	path := SnapshotPath(dataDir)
	file, err := os.Open(path) // #nosec G304 -- path is derived from the configured data dir, not user input
	if err != nil {
		if os.IsNotExist(err) {
			return os.ErrNotExist
		}
		return fmt.Errorf("failed to open snapshot file %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close snapshot file %s: %v\n", path, closeErr)
		}
	}()

	decoder := gob.NewDecoder(file)
	if err := decoder.Decode(serviceStore); err != nil {
		return fmt.Errorf("failed to gob decode listing snapshot from %s: %w", path, err)
	}
	return nil
}
