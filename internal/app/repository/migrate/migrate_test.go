package migrate

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OkhDev/media-to-text/internal/app/model"
	"github.com/OkhDev/media-to-text/internal/app/testutil"
)

func record(name string, finished time.Time) model.HistoryRecord {
	return model.HistoryRecord{
		FileName:       name,
		InputDir:       "media-files",
		TranscriptFile: "transcripts/" + name + ".txt",
		AudioDuration:  60,
		ChunkCount:     1,
		ChunksDone:     1,
		Model:          "whisper-1",
		FinishedAt:     finished,
	}
}

func TestCopyReplaysOldestFirst(t *testing.T) {
	base := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	src := testutil.NewMockHistoryDAO()
	// Newest first, the order GetAll reports.
	src.Records = []model.HistoryRecord{
		record("newest.mp4", base.Add(2*time.Hour)),
		record("middle.mp4", base.Add(time.Hour)),
		record("oldest.mp4", base),
	}

	dst := testutil.NewMockHistoryDAO()
	copied, err := Copy(src, dst)
	require.NoError(t, err)
	assert.Equal(t, 3, copied)

	require.Len(t, dst.Records, 3)
	assert.Equal(t, "oldest.mp4", dst.Records[0].FileName)
	assert.Equal(t, "middle.mp4", dst.Records[1].FileName)
	assert.Equal(t, "newest.mp4", dst.Records[2].FileName)

	// The destination hands out its own IDs.
	assert.Equal(t, 1, dst.Records[0].ID)
	assert.Equal(t, 3, dst.Records[2].ID)
}

func TestCopyEmptySource(t *testing.T) {
	copied, err := Copy(testutil.NewMockHistoryDAO(), testutil.NewMockHistoryDAO())
	require.NoError(t, err)
	assert.Zero(t, copied)
}

func TestCopySourceReadError(t *testing.T) {
	src := testutil.NewMockHistoryDAO()
	src.GetAllErr = errors.New("database is locked")

	copied, err := Copy(src, testutil.NewMockHistoryDAO())
	assert.Zero(t, copied)
	assert.ErrorContains(t, err, "read source journal")
}

func TestCopyDestinationWriteError(t *testing.T) {
	base := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	src := testutil.NewMockHistoryDAO()
	src.Records = []model.HistoryRecord{
		record("newest.mp4", base.Add(time.Hour)),
		record("oldest.mp4", base),
	}

	dst := testutil.NewMockHistoryDAO()
	dst.RecordErr = errors.New("permission denied")

	copied, err := Copy(src, dst)
	assert.Zero(t, copied)
	assert.ErrorContains(t, err, "write record for oldest.mp4")
}
