// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openTestStore(t)

	if err := store.Record([]string{"ls"}, "ls -a -l", "print"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := store.Record([]string{"git", "commit"}, "git commit --amend", "execute"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	entries, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	// Newest first.
	if entries[0].Command != "git commit --amend" {
		t.Errorf("entries[0].Command = %q", entries[0].Command)
	}
	if entries[0].Base != "git commit" {
		t.Errorf("entries[0].Base = %q", entries[0].Base)
	}
	if entries[0].Mode != "execute" {
		t.Errorf("entries[0].Mode = %q", entries[0].Mode)
	}
	if entries[0].ID == "" || entries[0].CreatedAt.IsZero() {
		t.Error("entry metadata not populated")
	}
}

func TestRecent_Limit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		if err := store.Record([]string{"ls"}, "ls", "print"); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	entries, err := store.Recent(3)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("expected 3 entries, got %d", len(entries))
	}
}

func TestRecent_EmptyStore(t *testing.T) {
	store := openTestStore(t)
	entries, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestCountAndClear(t *testing.T) {
	store := openTestStore(t)
	_ = store.Record([]string{"ls"}, "ls", "print")
	_ = store.Record([]string{"ls"}, "ls -a", "print")

	n, err := store.Count()
	if err != nil || n != 2 {
		t.Fatalf("Count = %d, %v; want 2", n, err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	n, _ = store.Count()
	if n != 0 {
		t.Errorf("Count after Clear = %d", n)
	}
}

func TestUseAfterClose(t *testing.T) {
	store := openTestStore(t)
	store.Close()

	if err := store.Record([]string{"ls"}, "ls", "print"); !errors.Is(err, ErrClosed) {
		t.Errorf("Record after Close = %v, want ErrClosed", err)
	}
	if _, err := store.Recent(1); !errors.Is(err, ErrClosed) {
		t.Errorf("Recent after Close = %v, want ErrClosed", err)
	}
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	store.Close()
}
