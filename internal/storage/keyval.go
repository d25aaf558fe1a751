// Package storage persists the client's small local state: token pair and
// UI preferences. Keys are flat strings read at startup and written on
// change, mirroring what the browser build kept in localStorage.
package storage

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

// Well-known state keys.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyDarkMode     = "dark_mode"
	KeyLocale       = "locale"
)

// Store is a file-backed string key-value store. Every Set/Delete is
// written through immediately; there is no batching.
type Store struct {
	mu   sync.Mutex
	v    *viper.Viper
	path string
}

// Open loads the state file at path, creating parent directories as
// needed. A missing file yields an empty store.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	return &Store{v: v, path: path}, nil
}

// Get returns the value for key, or "" when absent.
func (s *Store) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.GetString(key)
}

// Has reports whether key holds a non-empty value.
func (s *Store) Has(key string) bool {
	return s.Get(key) != ""
}

// Set writes key=value and persists the file.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Set(key, value)
	return s.v.WriteConfigAs(s.path)
}

// Delete clears key and persists the file. All values are strings, so an
// empty value and an absent key are equivalent.
func (s *Store) Delete(key string) error {
	return s.Set(key, "")
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}
