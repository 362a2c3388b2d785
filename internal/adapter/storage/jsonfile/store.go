package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/bnema/pagerec/internal/domain"
	"github.com/bnema/pagerec/internal/port"
)

// Store keeps recordings in a single JSON document. It applies the same
// uniqueness rules as the SQLite schema: one row per id and at most one
// recording row per url.
type Store struct {
	mu         sync.RWMutex
	path       string
	recordings map[int64]*domain.Recording
}

func NewStore(dataDir string) (*Store, error) {
	path := filepath.Join(dataDir, "recordings.json")

	store := &Store{
		path:       path,
		recordings: make(map[int64]*domain.Recording),
	}

	if err := store.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return store, nil
}

// Close is a no-op; every write is already on disk.
func (s *Store) Close() error {
	return nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	if len(data) == 0 {
		return nil
	}

	var list []*domain.Recording
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}

	for _, r := range list {
		s.recordings[r.ID] = r
	}

	return nil
}

func (s *Store) save() error {
	tmpPath := s.path + ".tmp"

	data, err := json.MarshalIndent(s.sortedLocked(), "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return err
	}

	return os.Rename(tmpPath, s.path)
}

func (s *Store) Insert(_ context.Context, r *domain.Recording) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.recordings[r.ID]; exists {
		return fmt.Errorf("%w: id %d", domain.ErrDuplicateID, r.ID)
	}
	if r.Status == domain.StatusRecording {
		for _, existing := range s.recordings {
			if existing.URL == r.URL && existing.IsActive() {
				return fmt.Errorf("%w: %s", domain.ErrDuplicateURL, r.URL)
			}
		}
	}

	stored := *r
	s.recordings[r.ID] = &stored
	if err := s.save(); err != nil {
		delete(s.recordings, r.ID)
		return err
	}
	return nil
}

func (s *Store) Get(_ context.Context, id int64) (*domain.Recording, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.recordings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	out := *r
	return &out, nil
}

func (s *Store) ListByURLAndStatus(_ context.Context, url string, status domain.Status) ([]*domain.Recording, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.Recording
	for _, r := range s.sortedLocked() {
		if r.URL == url && r.Status == status {
			out := *r
			result = append(result, &out)
		}
	}
	return result, nil
}

func (s *Store) ListAll(_ context.Context) ([]*domain.Recording, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sorted := s.sortedLocked()
	result := make([]*domain.Recording, len(sorted))
	for i, r := range sorted {
		out := *r
		result[i] = &out
	}
	return result, nil
}

func (s *Store) UpdateStatus(_ context.Context, id int64, status domain.Status, errMsg string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.recordings[id]
	if !ok {
		return 0, nil
	}

	prev := *r
	r.Status = status
	r.ErrorMessage = errMsg
	r.UpdatedAt = time.Now().UTC()
	if err := s.save(); err != nil {
		*r = prev
		return 0, err
	}
	return 1, nil
}

func (s *Store) Delete(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.recordings[id]
	if !ok {
		return 0, nil
	}

	delete(s.recordings, id)
	if err := s.save(); err != nil {
		s.recordings[id] = r
		return 0, err
	}
	return 1, nil
}

// sortedLocked returns rows newest first. Callers hold s.mu.
func (s *Store) sortedLocked() []*domain.Recording {
	list := make([]*domain.Recording, 0, len(s.recordings))
	for _, r := range s.recordings {
		list = append(list, r)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID > list[j].ID
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list
}

var _ port.RecordingStore = (*Store)(nil)
