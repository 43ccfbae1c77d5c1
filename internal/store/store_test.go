package store

import (
	"path/filepath"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medimind.db")
	s, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if _, ok, err := s.Get(KeyUsers); err != nil || ok {
		t.Fatalf("Get on empty store = ok=%v err=%v, want absent", ok, err)
	}

	if err := s.Set(KeyUsers, `[{"id":1}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := s.Get(KeyUsers)
	if err != nil || !ok {
		t.Fatalf("Get after Set = ok=%v err=%v", ok, err)
	}
	if v != `[{"id":1}]` {
		t.Fatalf("Get = %q, want stored value", v)
	}
}

func TestSQLiteStoreOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medimind.db")
	s, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if err := s.Set(KeyCurrentUser, "first"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(KeyCurrentUser, "second"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	v, _, err := s.Get(KeyCurrentUser)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v != "second" {
		t.Fatalf("Get = %q, want %q", v, "second")
	}
}

func TestSQLiteStoreDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medimind.db")
	s, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if err := s.Set(KeyCurrentUser, "{}"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Delete(KeyCurrentUser); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Get(KeyCurrentUser); ok {
		t.Fatal("Get after Delete: key still present")
	}

	// Deleting a missing key is a no-op.
	if err := s.Delete("never-set"); err != nil {
		t.Fatalf("Delete missing key: %v", err)
	}
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medimind.db")
	s, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Set(KeyUsers, "[]"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := Open(path, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	v, ok, err := s2.Get(KeyUsers)
	if err != nil || !ok || v != "[]" {
		t.Fatalf("Get after reopen = %q ok=%v err=%v", v, ok, err)
	}
}

func TestMemStore(t *testing.T) {
	m := NewMemStore()
	if _, ok, _ := m.Get("k"); ok {
		t.Fatal("empty MemStore reported a value")
	}
	if err := m.Set("k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, ok, _ := m.Get("k"); !ok || v != "v" {
		t.Fatalf("Get = %q ok=%v", v, ok)
	}
	if err := m.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := m.Get("k"); ok {
		t.Fatal("value survived Delete")
	}
}
