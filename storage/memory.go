package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/davonjagah/JagahVA/models"
)

// MemoryStore keeps records in process memory. It backs tests and the
// zero-config dev mode. Records are copied on the way in and out so callers
// never alias the stored state.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: map[string][]byte{}}
}

func (s *MemoryStore) GetUser(ctx context.Context, userID string) (*models.UserRecord, error) {
	s.mu.RLock()
	data, ok := s.records[userID]
	s.mu.RUnlock()

	if !ok {
		return models.NewUserRecord(), nil
	}

	record := models.NewUserRecord()
	if err := json.Unmarshal(data, record); err != nil {
		return nil, fmt.Errorf("storage: decode record for user %s: %w", userID, err)
	}
	record.Normalize()
	return record, nil
}

func (s *MemoryStore) SaveUser(ctx context.Context, userID string, record *models.UserRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("storage: encode record for user %s: %w", userID, err)
	}

	s.mu.Lock()
	s.records[userID] = data
	s.mu.Unlock()
	return nil
}
