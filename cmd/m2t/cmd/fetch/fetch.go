package fetch

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OkhDev/media-to-text/internal/config"
	"github.com/OkhDev/media-to-text/internal/downloader"
	"github.com/OkhDev/media-to-text/internal/logging"
)

var outputDir string

// Cmd represents the fetch command
var Cmd = &cobra.Command{
	Use:   "fetch [url]",
	Short: "Download a media file or the media behind a web page",
	Long: `Download a media file into the media directory, ready for transcription.
A URL pointing straight at an audio or video file is downloaded as is. Any
other URL is treated as a share page and the file referenced by its Open
Graph og:audio or og:video tag is downloaded instead. Pages without such a
tag are rejected.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
		logger := logging.MustNew(logging.Options{Verbose: verbose})
		defer logger.Sync()

		settings, err := config.Load(config.SettingsFile)
		if err != nil {
			return err
		}

		dir := settings.MediaDir
		if outputDir != "" {
			dir = outputDir
		}

		fetcher := downloader.NewFetcher(nil, logger)
		ref, err := fetcher.Resolve(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		path, err := fetcher.Download(cmd.Context(), ref, dir)
		if err != nil {
			return err
		}

		fmt.Printf("Downloaded '%s' to %s\n", ref.Title, path)
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&outputDir, "outputDir", "o", "", "directory to save into, overrides m2t.yaml")
}
