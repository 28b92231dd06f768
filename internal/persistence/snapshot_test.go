package persistence

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/urbanhive/marketplace-search/model"
	"github.com/urbanhive/marketplace-search/store"
)

func TestSaveAndLoadSnapshot(t *testing.T) {
	dataDir := t.TempDir()

	original := store.NewServiceStore()
	err := original.AddServices([]model.Service{
		{ID: "a", Title: "Deep Cleaning", Rating: 4.5, CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "b", Title: "AC Repair"},
	})
	if err != nil {
		t.Fatalf("AddServices failed: %v", err)
	}

	if err := SaveSnapshot(dataDir, original); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	if _, err := os.Stat(SnapshotPath(dataDir)); err != nil {
		t.Fatalf("snapshot file missing: %v", err)
	}

	restored := store.NewServiceStore()
	if err := LoadSnapshot(dataDir, restored); err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}

	if restored.Count() != 2 {
		t.Errorf("restored Count = %d, want 2", restored.Count())
	}
	listing, err := restored.GetService("a")
	if err != nil {
		t.Fatalf("GetService after load failed: %v", err)
	}
	if listing.Title != "Deep Cleaning" || listing.Rating != 4.5 {
		t.Errorf("restored listing = %+v", listing)
	}
}

func TestLoadSnapshot_MissingFile(t *testing.T) {
	err := LoadSnapshot(t.TempDir(), store.NewServiceStore())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadSnapshot on empty dir error = %v, want os.ErrNotExist", err)
	}
}

func TestSaveSnapshot_OverwritesAtomically(t *testing.T) {
	dataDir := t.TempDir()

	first := store.NewServiceStore()
	if err := first.AddServices([]model.Service{{ID: "old", Title: "Old"}}); err != nil {
		t.Fatalf("AddServices failed: %v", err)
	}
	if err := SaveSnapshot(dataDir, first); err != nil {
		t.Fatalf("first SaveSnapshot failed: %v", err)
	}

	second := store.NewServiceStore()
	if err := second.AddServices([]model.Service{{ID: "new", Title: "New"}}); err != nil {
		t.Fatalf("AddServices failed: %v", err)
	}
	if err := SaveSnapshot(dataDir, second); err != nil {
		t.Fatalf("second SaveSnapshot failed: %v", err)
	}

	// No temp file left behind.
	entries, err := filepath.Glob(filepath.Join(dataDir, "*.tmp"))
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("leftover temp files: %v", entries)
	}

	restored := store.NewServiceStore()
	if err := LoadSnapshot(dataDir, restored); err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if _, err := restored.GetService("new"); err != nil {
		t.Errorf("latest snapshot not loaded: %v", err)
	}
	if _, err := restored.GetService("old"); err == nil {
		t.Error("stale listing survived overwrite")
	}
}
