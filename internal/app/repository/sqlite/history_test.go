package sqlite

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OkhDev/media-to-text/internal/app/model"
	"github.com/OkhDev/media-to-text/internal/app/repository"
)

func TestSQLiteDAO_Interface(t *testing.T) {
	var _ repository.HistoryDAO = (*SQLiteDB)(nil)
}

func TestNewSQLiteDBCreatesParentDir(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data", "history.db")

	db, err := NewSQLiteDB(dbPath)
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestRecordAndGetAllRoundtrip(t *testing.T) {
	db, err := NewSQLiteDB(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer db.Close()

	first := model.HistoryRecord{
		FileName:       "broken.mov",
		InputDir:       "media-files",
		TranscriptFile: "",
		AudioDuration:  0,
		ChunkCount:     0,
		ChunksDone:     0,
		Model:          "whisper-1",
		FinishedAt:     time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
		HasError:       1,
		ErrorMessage:   "ffprobe error",
	}
	second := model.HistoryRecord{
		FileName:       "talk.mp4",
		InputDir:       "media-files",
		TranscriptFile: "transcripts/talk_20250314_092653.txt",
		AudioDuration:  1440.5,
		ChunkCount:     2,
		ChunksDone:     2,
		Model:          "whisper-1",
		FinishedAt:     time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
		HasError:       0,
		ErrorMessage:   "",
	}
	require.NoError(t, db.Record(first))
	require.NoError(t, db.Record(second))

	records, err := db.GetAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	// newest first
	assert.Equal(t, "talk.mp4", records[0].FileName)
	assert.Equal(t, "transcripts/talk_20250314_092653.txt", records[0].TranscriptFile)
	assert.InDelta(t, 1440.5, records[0].AudioDuration, 1e-9)
	assert.Equal(t, 2, records[0].ChunkCount)
	assert.Equal(t, 0, records[0].HasError)
	assert.True(t, records[0].FinishedAt.Equal(second.FinishedAt))

	assert.Equal(t, "broken.mov", records[1].FileName)
	assert.Equal(t, 1, records[1].HasError)
	assert.Equal(t, "ffprobe error", records[1].ErrorMessage)
}

func TestGetAllEmptyJournal(t *testing.T) {
	db, err := NewSQLiteDB(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer db.Close()

	records, err := db.GetAll()
	require.NoError(t, err)
	assert.Empty(t, records)
}
