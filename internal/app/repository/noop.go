package repository

import "github.com/OkhDev/media-to-text/internal/app/model"

// NoopDAO discards every record. It backs the "none" history backend.
type NoopDAO struct{}

func NewNoopDAO() *NoopDAO {
	return &NoopDAO{}
}

func (NoopDAO) Close() error {
	return nil
}

func (NoopDAO) GetAll() ([]model.HistoryRecord, error) {
	return nil, nil
}

func (NoopDAO) Record(model.HistoryRecord) error {
	return nil
}
