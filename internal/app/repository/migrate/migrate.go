package migrate

import (
	"fmt"

	"github.com/OkhDev/media-to-text/internal/app/repository"
)

// Copy replays every record of the source journal into the destination,
// oldest first so the destination's insertion order matches history. It
// returns the number of records written before any failure.
func Copy(src, dst repository.HistoryDAO) (int, error) {
	records, err := src.GetAll()
	if err != nil {
		return 0, fmt.Errorf("read source journal: %w", err)
	}

	copied := 0
	// GetAll returns newest first.
	for i := len(records) - 1; i >= 0; i-- {
		record := records[i]
		record.ID = 0
		if err := dst.Record(record); err != nil {
			return copied, fmt.Errorf("write record for %s: %w", record.FileName, err)
		}
		copied++
	}
	return copied, nil
}
