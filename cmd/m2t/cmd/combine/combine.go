package combine

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/OkhDev/media-to-text/internal/app/combiner"
	"github.com/OkhDev/media-to-text/internal/config"
	"github.com/OkhDev/media-to-text/internal/logging"
)

var (
	inputDir   string
	outputFile string
)

// Cmd represents the combine command
var Cmd = &cobra.Command{
	Use:   "combine",
	Short: "Merge transcript .txt files into one document",
	Long: `Merge every .txt file in the transcript directory into a single
document, in filename order, with a header naming the source of each
section.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
		logger := logging.MustNew(logging.Options{Verbose: verbose})
		defer logger.Sync()

		settings, err := config.Load(config.SettingsFile)
		if err != nil {
			return err
		}

		dir := settings.TranscriptDir
		if inputDir != "" {
			dir = inputDir
		}
		out := outputFile
		if out == "" {
			out = combiner.DefaultOutputName(time.Now())
		}

		count, err := combiner.New(logger).Combine(dir, out)
		if err != nil {
			return err
		}
		if count == 0 {
			fmt.Printf("No .txt files found in '%s'\n", dir)
			return nil
		}

		fmt.Printf("Successfully combined %d transcript files into '%s'\n", count, out)
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&inputDir, "inputDir", "i", "", "directory holding the .txt files, overrides m2t.yaml")
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "combined output file (default combined_transcript_<timestamp>.txt)")
}
