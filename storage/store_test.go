package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func testStore(t *testing.T, s Store) {
	t.Helper()

	if _, err := s.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Put("state", []byte("one")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put("state", []byte("two")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := s.Get("state")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "two" {
		t.Fatalf("expected %q, got %q", "two", got)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	testStore(t, s)
}

func TestFileStoreRejectsPathKeys(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	if err := s.Put("../escape", []byte("x")); err == nil {
		t.Fatal("expected key with path separator to be rejected")
	}
}

func TestSQLiteStore(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "board.db"))
	if err != nil {
		t.Fatalf("new sqlite store: %v", err)
	}
	testStore(t, s)
}

func TestSQLiteStorePersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.db")
	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Put(DefaultKey, []byte(`{"scale":2}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	s.Close()

	s, err = NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	got, err := s.Get(DefaultKey)
	if err != nil || string(got) != `{"scale":2}` {
		t.Fatalf("expected stored value after reopen, got %q, %v", got, err)
	}
}

func TestQuotaStore(t *testing.T) {
	q := &QuotaStore{Store: NewMemoryStore(), Limit: 4}
	if err := q.Put("k", []byte("1234")); err != nil {
		t.Fatalf("put at limit: %v", err)
	}
	if err := q.Put("k", []byte("12345")); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
	got, _ := q.Get("k")
	if string(got) != "1234" {
		t.Fatalf("rejected write changed value to %q", got)
	}
}
