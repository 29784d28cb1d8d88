package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/yurifrl/resultado/pkg/models"
)

// FileStore keeps one JSON blob per year in a directory. JSON already
// normalizes the numeric types, so records round-trip as plain numbers,
// lists and strings.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory when missing.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(year int) string {
	return filepath.Join(s.dir, fmt.Sprintf("%d.json", year))
}

func (s *FileStore) Put(year int, rec *models.YearRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode record for %d: %w", year, err)
	}
	if err := os.WriteFile(s.path(year), data, 0o644); err != nil {
		return fmt.Errorf("failed to write record for %d: %w", year, err)
	}
	return nil
}

func (s *FileStore) Get(year int) (*models.YearRecord, error) {
	data, err := os.ReadFile(s.path(year))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("year %d: %w", year, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read record for %d: %w", year, err)
	}
	var rec models.YearRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode record for %d: %w", year, err)
	}
	return &rec, nil
}

func (s *FileStore) Years() ([]int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read store directory: %w", err)
	}
	var years []int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		year, err := strconv.Atoi(strings.TrimSuffix(name, ".json"))
		if err != nil {
			continue
		}
		years = append(years, year)
	}
	sort.Ints(years)
	return years, nil
}
