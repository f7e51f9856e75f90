package pg

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/OkhDev/media-to-text/internal/app/model"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS history (
	id SERIAL PRIMARY KEY,
	file_name TEXT NOT NULL,
	input_dir TEXT NOT NULL,
	transcript_file TEXT NOT NULL,
	audio_duration DOUBLE PRECISION NOT NULL,
	chunk_count INTEGER NOT NULL,
	chunks_done INTEGER NOT NULL,
	model TEXT NOT NULL,
	finished_at TIMESTAMPTZ NOT NULL,
	has_error INTEGER NOT NULL,
	error_message TEXT
);`

type PostgresDB struct {
	db *sql.DB
}

// NewPostgresDB connects with the given connection string and ensures the
// history table exists. The first statement is also the connectivity check,
// so a bad DSN fails here rather than mid-run.
func NewPostgresDB(connectionString string) (*PostgresDB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history table: %w", err)
	}
	return &PostgresDB{db: db}, nil
}

func (pdb *PostgresDB) Close() error {
	return pdb.db.Close()
}

func (pdb *PostgresDB) Record(r model.HistoryRecord) error {
	insertSQL := `INSERT INTO history (file_name, input_dir, transcript_file, audio_duration, chunk_count, chunks_done, model, finished_at, has_error, error_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`
	_, err := pdb.db.Exec(insertSQL, r.FileName, r.InputDir, r.TranscriptFile, r.AudioDuration,
		r.ChunkCount, r.ChunksDone, r.Model, r.FinishedAt, r.HasError, r.ErrorMessage)
	if err != nil {
		return fmt.Errorf("insert history row: %w", err)
	}
	return nil
}

func (pdb *PostgresDB) GetAll() ([]model.HistoryRecord, error) {
	query := `
		SELECT id, file_name, input_dir, transcript_file, audio_duration, chunk_count, chunks_done, model, finished_at, has_error, error_message
		FROM history
		ORDER BY finished_at DESC`

	rows, err := pdb.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var records []model.HistoryRecord
	for rows.Next() {
		var r model.HistoryRecord
		err = rows.Scan(&r.ID, &r.FileName, &r.InputDir, &r.TranscriptFile, &r.AudioDuration,
			&r.ChunkCount, &r.ChunksDone, &r.Model, &r.FinishedAt, &r.HasError, &r.ErrorMessage)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %w", err)
		}
		records = append(records, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return records, nil
}
