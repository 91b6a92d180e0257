package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"telegram_relay/internal/domain/credentials"

	"github.com/gofrs/flock"
	"github.com/sirupsen/logrus"
)

// FileStore keeps the credential record in a single JSON file.
type FileStore struct {
	path   string
	logger *logrus.Entry
}

func NewFileStore(path string, logger *logrus.Entry) *FileStore {
	return &FileStore{path: path, logger: logger}
}

// Path returns the file the store reads and writes.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the saved record. A missing, unreadable or malformed file
// yields an empty record so the caller starts unconfigured instead of failing.
func (s *FileStore) Load() credentials.Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.WithError(err).WithField("path", s.path).Debug("No usable config file, starting empty")
		return credentials.Record{}
	}
	var rec credentials.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		s.logger.WithError(err).WithField("path", s.path).Debug("Config file is malformed, starting empty")
		return credentials.Record{}
	}
	return rec
}

// Save overwrites the file with rec. The new content is written to a temp
// file in the same directory and renamed over the old one. Concurrent savers
// serialize on "<path>.lock", which stays on disk after the first save.
func (s *FileStore) Save(rec credentials.Record) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	lock := flock.New(s.path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock config file: %w", err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	payload, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp config file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		_ = os.Remove(tmpName)
	}

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("failed to flush config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("failed to close temp config file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		cleanup()
		return fmt.Errorf("failed to set config permissions: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		cleanup()
		return fmt.Errorf("failed to replace config file: %w", err)
	}

	s.logger.WithField("path", s.path).Debug("Config saved")
	return nil
}
