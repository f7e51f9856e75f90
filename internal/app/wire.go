//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/OkhDev/media-to-text/internal/app/api"
	"github.com/OkhDev/media-to-text/internal/app/api/openai"
	"github.com/OkhDev/media-to-text/internal/app/api/openai/whisper"
	"github.com/OkhDev/media-to-text/internal/app/audio"
	"github.com/OkhDev/media-to-text/internal/app/converter"
	"github.com/OkhDev/media-to-text/internal/app/repository"
	"github.com/OkhDev/media-to-text/internal/app/repository/pg"
	"github.com/OkhDev/media-to-text/internal/app/repository/sqlite"
	"github.com/OkhDev/media-to-text/internal/config"
)

// APIKey is the OpenAI credential resolved by config.EnsureAPIKey. A named
// type keeps it from colliding with other string parameters in wire.
type APIKey string

// provideTranscriber builds the OpenAI-backed transcriber for the configured model.
func provideTranscriber(apiKey APIKey, settings config.Settings) api.Transcriber {
	return whisper.NewRemoteTranscriber(openai.NewClient(string(apiKey)), settings.Model)
}

// provideSplitter builds the ffmpeg chunker that feeds the transcriber.
func provideSplitter(settings config.Settings, logger *zap.Logger) converter.Splitter {
	return audio.NewChunker(settings.TempDir, settings.MaxChunkBytes(), logger)
}

// provideHistoryDAO picks the journal backend named in m2t.yaml.
func provideHistoryDAO(settings config.Settings) (repository.HistoryDAO, error) {
	switch settings.History.Backend {
	case "postgres":
		return pg.NewPostgresDB(settings.History.DSN)
	case "none":
		return repository.NewNoopDAO(), nil
	default:
		return sqlite.NewSQLiteDB(settings.History.Path)
	}
}

func InitializeConverter(apiKey APIKey, settings config.Settings, progress converter.ProgressConfig, logger *zap.Logger) (*converter.Converter, error) {
	wire.Build(converter.NewConverter, converter.NewHeartbeat, provideTranscriber, provideSplitter, provideHistoryDAO)
	return &converter.Converter{}, nil
}

func InitializeHistoryDAO(settings config.Settings) (repository.HistoryDAO, error) {
	wire.Build(provideHistoryDAO)
	return nil, nil
}
