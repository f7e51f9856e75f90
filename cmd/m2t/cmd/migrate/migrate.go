package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OkhDev/media-to-text/internal/app"
	"github.com/OkhDev/media-to-text/internal/app/repository/migrate"
	"github.com/OkhDev/media-to-text/internal/config"
)

var toBackend string

func init() {
	Cmd.Flags().StringVarP(&toBackend, "to", "t", "", "destination backend, sqlite or postgres")

	Cmd.MarkFlagRequired("to")
}

// Cmd represents the migrate command
var Cmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy the history journal to another backend",
	Long: `Copy every record of the history journal from the backend configured in
m2t.yaml into another backend, oldest first. The destination reuses the
path and DSN from m2t.yaml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if toBackend != "sqlite" && toBackend != "postgres" {
			return fmt.Errorf("unknown destination backend %q", toBackend)
		}

		settings, err := config.Load(config.SettingsFile)
		if err != nil {
			return err
		}
		if settings.History.Backend == "none" {
			return fmt.Errorf("history journal is disabled in %s, nothing to migrate", config.SettingsFile)
		}
		if settings.History.Backend == toBackend {
			return fmt.Errorf("history journal already uses backend %s", toBackend)
		}

		src, err := app.InitializeHistoryDAO(settings)
		if err != nil {
			return err
		}
		defer src.Close()

		dstSettings := settings
		dstSettings.History.Backend = toBackend
		dst, err := app.InitializeHistoryDAO(dstSettings)
		if err != nil {
			return err
		}
		defer dst.Close()

		copied, err := migrate.Copy(src, dst)
		if err != nil {
			return err
		}

		fmt.Printf("migrated %d record(s) to %s\n", copied, toBackend)
		return nil
	},
}
