package sqlite

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/OkhDev/media-to-text/internal/app/model"
	"github.com/OkhDev/media-to-text/internal/app/util/files"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	file_name TEXT NOT NULL,
	input_dir TEXT NOT NULL,
	transcript_file TEXT NOT NULL,
	audio_duration REAL NOT NULL,
	chunk_count INTEGER NOT NULL,
	chunks_done INTEGER NOT NULL,
	model TEXT NOT NULL,
	finished_at TIMESTAMP NOT NULL,
	has_error INTEGER NOT NULL,
	error_message TEXT
);`

type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens the journal database at dbFilePath, creating the file,
// its parent directory and the history table as needed.
func NewSQLiteDB(dbFilePath string) (*SQLiteDB, error) {
	if err := files.EnsureDir(filepath.Dir(dbFilePath)); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dbFilePath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history table: %w", err)
	}

	return &SQLiteDB{db: db}, nil
}

func (sdb *SQLiteDB) Close() error {
	return sdb.db.Close()
}

func (sdb *SQLiteDB) Record(r model.HistoryRecord) error {
	insertSQL := `INSERT INTO history (file_name, input_dir, transcript_file, audio_duration, chunk_count, chunks_done, model, finished_at, has_error, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`
	_, err := sdb.db.Exec(insertSQL, r.FileName, r.InputDir, r.TranscriptFile, r.AudioDuration,
		r.ChunkCount, r.ChunksDone, r.Model, r.FinishedAt, r.HasError, r.ErrorMessage)
	if err != nil {
		return fmt.Errorf("insert history row: %w", err)
	}
	return nil
}

func (sdb *SQLiteDB) GetAll() ([]model.HistoryRecord, error) {
	sqlStr := `
		SELECT id, file_name, input_dir, transcript_file, audio_duration, chunk_count, chunks_done, model, finished_at, has_error, error_message
		FROM history
		ORDER BY finished_at DESC;`
	rows, err := sdb.db.Query(sqlStr)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	records := make([]model.HistoryRecord, 0)
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
