package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	"github.com/OkhDev/media-to-text/internal/app/model"
)

// ToExcel writes the history journal to an xlsx workbook at outputFilePath.
func ToExcel(records []model.HistoryRecord, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("History")
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "File Name"
	headerRow.AddCell().Value = "Input Dir"
	headerRow.AddCell().Value = "Transcript File"
	headerRow.AddCell().Value = "Audio Duration"
	headerRow.AddCell().Value = "Chunks"
	headerRow.AddCell().Value = "Model"
	headerRow.AddCell().Value = "Finished At"
	headerRow.AddCell().Value = "Error Message"

	for _, r := range records {
		row := sheet.AddRow()
		row.AddCell().Value = fmt.Sprint(r.ID)
		row.AddCell().Value = r.FileName
		row.AddCell().Value = r.InputDir
		row.AddCell().Value = r.TranscriptFile
		row.AddCell().Value = fmt.Sprintf("%.2f", r.AudioDuration)
		row.AddCell().Value = fmt.Sprintf("%d/%d", r.ChunksDone, r.ChunkCount)
		row.AddCell().Value = r.Model
		row.AddCell().Value = r.FinishedAt.Format(time.RFC3339)
		row.AddCell().Value = r.ErrorMessage
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
