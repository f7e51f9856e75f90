package testutil

import (
	"sync"

	"github.com/OkhDev/media-to-text/internal/app/model"
	"github.com/OkhDev/media-to-text/internal/app/repository"
)

// MockHistoryDAO keeps journal records in memory.
type MockHistoryDAO struct {
	mu        sync.Mutex
	Records   []model.HistoryRecord
	RecordErr error
	GetAllErr error
	Closed    bool
}

func NewMockHistoryDAO() *MockHistoryDAO {
	return &MockHistoryDAO{}
}

func (m *MockHistoryDAO) Record(r model.HistoryRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RecordErr != nil {
		return m.RecordErr
	}
	r.ID = len(m.Records) + 1
	m.Records = append(m.Records, r)
	return nil
}

func (m *MockHistoryDAO) GetAll() ([]model.HistoryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllErr != nil {
		return nil, m.GetAllErr
	}
	records := make([]model.HistoryRecord, len(m.Records))
	copy(records, m.Records)
	return records, nil
}

func (m *MockHistoryDAO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}

// FindByFileName returns the first record for the given file name.
func (m *MockHistoryDAO) FindByFileName(name string) (model.HistoryRecord, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.Records {
		if r.FileName == name {
			return r, true
		}
	}
	return model.HistoryRecord{}, false
}

var _ repository.HistoryDAO = (*MockHistoryDAO)(nil)
