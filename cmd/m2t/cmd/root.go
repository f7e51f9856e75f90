package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/OkhDev/media-to-text/cmd/m2t/cmd/combine"
	"github.com/OkhDev/media-to-text/cmd/m2t/cmd/export"
	"github.com/OkhDev/media-to-text/cmd/m2t/cmd/fetch"
	"github.com/OkhDev/media-to-text/cmd/m2t/cmd/migrate"
	"github.com/OkhDev/media-to-text/cmd/m2t/cmd/transcribe"
	"github.com/OkhDev/media-to-text/cmd/m2t/cmd/version"
)

// Verbose is bound to the persistent --verbose flag and drives log verbosity
// in every subcommand.
var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "m2t",
	Short: "Turn local media files into text transcripts",
	Long: `m2t batch-transcribes local audio and video files with the OpenAI API.

Drop media into the media directory, run 'm2t transcribe' to produce one
timestamped transcript per file, then 'm2t combine' to merge the finished
transcripts into a single document.`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(combine.Cmd)
	rootCmd.AddCommand(fetch.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(migrate.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
