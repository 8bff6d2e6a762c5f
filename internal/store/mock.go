package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/saicharanbm/finTrack/internal/models"
)

// MockStore is an in-memory Store for tests and local experimentation.
type MockStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]models.TransactionRecord
}

// NewMockStore creates an empty in-memory store.
func NewMockStore() *MockStore {
	return &MockStore{
		records: make(map[uuid.UUID]models.TransactionRecord),
	}
}

func (s *MockStore) Create(ctx context.Context, record *models.TransactionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record.CreatedAt = time.Now()
	s.records[record.ID] = *record
	return nil
}

func (s *MockStore) CreateBatch(ctx context.Context, records []models.TransactionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for i := range records {
		records[i].CreatedAt = now
		s.records[records[i].ID] = records[i]
	}
	return nil
}

func (s *MockStore) GetByID(ctx context.Context, id uuid.UUID, userID string) (*models.TransactionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok || record.UserID != userID {
		return nil, ErrNotFound
	}
	return &record, nil
}

func (s *MockStore) List(ctx context.Context, userID string, limit, offset int) ([]models.TransactionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.userRecords(userID)
	if offset >= len(records) {
		return nil, nil
	}
	records = records[offset:]
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}
	return records, nil
}

func (s *MockStore) ListByDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.TransactionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []models.TransactionRecord
	for _, record := range s.userRecords(userID) {
		if record.Date.Before(start) || record.Date.After(end) {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func (s *MockStore) Update(ctx context.Context, record *models.TransactionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.records[record.ID]
	if !ok || existing.UserID != record.UserID {
		return ErrNotFound
	}
	record.CreatedAt = existing.CreatedAt
	s.records[record.ID] = *record
	return nil
}

func (s *MockStore) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.records[id]
	if !ok || existing.UserID != userID {
		return ErrNotFound
	}
	delete(s.records, id)
	return nil
}

// userRecords returns a user's records sorted newest first. Callers must
// hold the lock.
func (s *MockStore) userRecords(userID string) []models.TransactionRecord {
	var records []models.TransactionRecord
	for _, record := range s.records {
		if record.UserID == userID {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.After(records[j].Date)
		}
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records
}
