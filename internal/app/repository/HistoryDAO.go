package repository

import "github.com/OkhDev/media-to-text/internal/app/model"

// HistoryDAO journals per-file run outcomes. The journal is append-only;
// nothing in the pipeline reads it back to decide what to process.
type HistoryDAO interface {
	Close() error

	GetAll() ([]model.HistoryRecord, error)

	Record(r model.HistoryRecord) error
}
