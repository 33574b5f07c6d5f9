// Package jsonstore is a single-file metadata backend for deployments that
// do not want to run Postgres. The whole dataset is kept in memory and
// flushed to one JSON document on every mutation.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"gallery-api/domain/models"
	"gallery-api/pkg/utils"
)

// document is the on-disk layout.
type document struct {
	Photos     []models.Photo     `json:"photos"`
	Tags       []models.Tag       `json:"tags"`
	DriveToken *models.DriveToken `json:"drive_token,omitempty"`
}

// Store owns the JSON file. All repositories built on it share one mutex, so
// cross-entity operations (photo create plus tag links) stay consistent.
type Store struct {
	mu   sync.Mutex
	path string
	doc  document
}

func NewStore(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
			return s, nil
		}
		return nil, fmt.Errorf("failed to read metadata file: %w", err)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.doc); err != nil {
			return nil, fmt.Errorf("failed to parse metadata file: %w", err)
		}
	}

	return s, nil
}

// persist writes the document through a temp file and rename so a crash
// mid-write never truncates the store. Caller must hold the mutex.
func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace metadata file: %w", err)
	}
	return nil
}

// seedTags inserts missing tags by slug. Caller must hold the mutex.
func (s *Store) seedTags(names []string) bool {
	existing := make(map[string]bool, len(s.doc.Tags))
	for _, t := range s.doc.Tags {
		existing[t.Slug] = true
	}

	changed := false
	for _, name := range names {
		slug := utils.Slugify(name)
		if existing[slug] {
			continue
		}
		s.doc.Tags = append(s.doc.Tags, models.Tag{
			ID:        uuid.New(),
			Name:      name,
			Slug:      slug,
			CreatedAt: time.Now(),
		})
		existing[slug] = true
		changed = true
	}
	return changed
}
