package transcribe

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OkhDev/media-to-text/internal/app"
	"github.com/OkhDev/media-to-text/internal/app/converter"
	"github.com/OkhDev/media-to-text/internal/app/model"
	"github.com/OkhDev/media-to-text/internal/config"
	"github.com/OkhDev/media-to-text/internal/logging"
)

var (
	mediaDir   string
	outputDir  string
	modelName  string
	maxChunkMB int
	noProgress bool
)

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe",
	Short: "Transcribe every media file in the media directory",
	Long: `Transcribe every audio and video file found in the media directory.

Each file is split into MP3 chunks that fit under the API size cap, the
chunks are transcribed in order, and the text is appended to a timestamped
transcript in the transcript directory. One failing file does not stop the
rest of the run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
		logger := logging.MustNew(logging.Options{Verbose: verbose})
		defer logger.Sync()

		settings, err := config.Load(config.SettingsFile)
		if err != nil {
			return err
		}
		if mediaDir != "" {
			settings.MediaDir = mediaDir
		}
		if outputDir != "" {
			settings.TranscriptDir = outputDir
		}
		if modelName != "" {
			settings.Model = modelName
		}
		if cmd.Flags().Changed("maxChunkMB") {
			if maxChunkMB <= 0 || maxChunkMB > 25 {
				return fmt.Errorf("maxChunkMB must be between 1 and 25, got %d", maxChunkMB)
			}
			settings.MaxChunkMB = maxChunkMB
		}

		apiKey, err := config.EnsureAPIKey(config.EnvFile)
		if err != nil {
			return err
		}

		progress := converter.ProgressConfig{
			Enabled: !noProgress && converter.ShouldShowProgress(false),
		}

		conv, err := app.InitializeConverter(app.APIKey(apiKey), settings, progress, logger)
		if err != nil {
			return err
		}
		defer conv.Close()

		summary, runErr := conv.Do(cmd.Context())
		if summary != nil {
			printSummary(summary)
		}
		return runErr
	},
}

func init() {
	Cmd.Flags().StringVarP(&mediaDir, "mediaDir", "d", "", "media directory to read, overrides m2t.yaml")
	Cmd.Flags().StringVarP(&outputDir, "outputDir", "o", "", "transcript directory to write, overrides m2t.yaml")
	Cmd.Flags().StringVarP(&modelName, "model", "m", "", "transcription model, overrides m2t.yaml")
	Cmd.Flags().IntVar(&maxChunkMB, "maxChunkMB", 0, "chunk size cap in MB, at most 25, overrides m2t.yaml")
	Cmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable the terminal spinner")
}

func printSummary(summary *model.RunSummary) {
	if summary.Total() == 0 {
		return
	}

	failures := summary.Failures()

	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println("Processing complete!")
	fmt.Printf("Successful: %d file(s)\n", summary.Succeeded())
	fmt.Printf("Failed: %d file(s)\n", len(failures))
	if len(failures) > 0 {
		fmt.Println("\nFailed files:")
		for _, outcome := range failures {
			fmt.Printf("  - %s: %v\n", outcome.File.Name, outcome.Err)
		}
	}
}
