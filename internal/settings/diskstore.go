package settings

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"github.com/m2g-app/m2g/internal/logger"
)

// DiskStore persists preferences as one JSON scalar per key under a base
// directory. It backs the maintenance CLI and the GUI's --store=file mode.
type DiskStore struct {
	d *diskv.Diskv
}

// DefaultDir returns the store location under the user config directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "m2g", "settings"), nil
}

func NewDiskStore(basePath string) (*DiskStore, error) {
	if basePath == "" {
		return nil, errors.New("settings: base path required")
	}
	if err := os.MkdirAll(basePath, 0o700); err != nil {
		return nil, err
	}
	return &DiskStore{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 64 * 1024,
	})}, nil
}

func (s *DiskStore) read(key string, out any) bool {
	data, err := s.d.Read(key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		logger.Warn("Discarding corrupt setting", "key", key, "error", err)
		return false
	}
	return true
}

func (s *DiskStore) write(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Error("Failed to encode setting", "key", key, "error", err)
		return
	}
	if err := s.d.Write(key, data); err != nil {
		logger.Error("Failed to persist setting", "key", key, "error", err)
	}
}

func (s *DiskStore) GetString(key string) (string, bool) {
	var v string
	ok := s.read(key, &v)
	return v, ok
}

func (s *DiskStore) SetString(key, value string) { s.write(key, value) }

func (s *DiskStore) GetFloat(key string) (float64, bool) {
	var v float64
	ok := s.read(key, &v)
	return v, ok
}

func (s *DiskStore) SetFloat(key string, value float64) { s.write(key, value) }

func (s *DiskStore) GetBool(key string) (bool, bool) {
	var v bool
	ok := s.read(key, &v)
	return v, ok
}

func (s *DiskStore) SetBool(key string, value bool) { s.write(key, value) }
