package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OkhDev/media-to-text/internal/app"
	"github.com/OkhDev/media-to-text/internal/app/converter/export"
	"github.com/OkhDev/media-to-text/internal/config"
)

var (
	output string
	limit  int
)

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "", "path of the xlsx workbook to write")
	Cmd.Flags().IntVarP(&limit, "limit", "l", 0, "export only the newest N records, 0 exports all")

	Cmd.MarkFlagRequired("output")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the transcription history to excel",
	Long: `Export the transcription history to excel

- One row per processed file: transcript path, duration, chunk counts and errors`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load(config.SettingsFile)
		if err != nil {
			return err
		}
		if settings.History.Backend == "none" {
			return fmt.Errorf("history journal is disabled in %s, nothing to export", config.SettingsFile)
		}

		db, err := app.InitializeHistoryDAO(settings)
		if err != nil {
			return err
		}
		defer db.Close()

		records, err := db.GetAll()
		if err != nil {
			return err
		}
		// records come back newest first
		if limit > 0 && len(records) > limit {
			records = records[:limit]
		}

		if err := export.ToExcel(records, output); err != nil {
			return err
		}
		fmt.Printf("export finished, exported file path: %v\n", output)
		return nil
	},
}
