package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/stockpilot/stockpilot-go/internal/storage"
)

func TestStore_SetGetRoundTrip(t *testing.T) {
	s, err := storage.Open(filepath.Join(t.TempDir(), "state.yaml"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if err := s.Set(storage.KeyAccessToken, "tok-1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := s.Get(storage.KeyAccessToken); got != "tok-1" {
		t.Errorf("expected 'tok-1', got '%s'", got)
	}
	if !s.Has(storage.KeyAccessToken) {
		t.Error("expected Has to be true")
	}
}

func TestStore_MissingKeyIsEmpty(t *testing.T) {
	s, err := storage.Open(filepath.Join(t.TempDir(), "state.yaml"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if got := s.Get("never_set"); got != "" {
		t.Errorf("expected empty value, got '%s'", got)
	}
	if s.Has("never_set") {
		t.Error("expected Has to be false")
	}
}

func TestStore_DeleteClearsKey(t *testing.T) {
	s, err := storage.Open(filepath.Join(t.TempDir(), "state.yaml"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	_ = s.Set(storage.KeyRefreshToken, "tok-refresh")
	if err := s.Delete(storage.KeyRefreshToken); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if s.Has(storage.KeyRefreshToken) {
		t.Error("expected key cleared")
	}
}

func TestStore_ValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.yaml")

	s, err := storage.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	_ = s.Set(storage.KeyDarkMode, "true")
	_ = s.Set(storage.KeyLocale, "ru")

	s2, err := storage.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got := s2.Get(storage.KeyDarkMode); got != "true" {
		t.Errorf("expected dark_mode 'true' after reopen, got '%s'", got)
	}
	if got := s2.Get(storage.KeyLocale); got != "ru" {
		t.Errorf("expected locale 'ru' after reopen, got '%s'", got)
	}
}

func TestStore_MissingFileYieldsEmptyStore(t *testing.T) {
	s, err := storage.Open(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.Has(storage.KeyAccessToken) {
		t.Error("expected empty store for missing file")
	}
}
