package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// SettingsFile is the optional per-project settings file.
const SettingsFile = "m2t.yaml"

// Settings is the runtime configuration surface. Command-line flags override
// these values; a missing settings file means defaults.
type Settings struct {
	MediaDir      string  `yaml:"media_dir" validate:"required"`
	TranscriptDir string  `yaml:"transcript_dir" validate:"required"`
	TempDir       string  `yaml:"temp_dir" validate:"required"`
	Model         string  `yaml:"model" validate:"required"`
	MaxChunkMB    int     `yaml:"max_chunk_mb" validate:"gt=0,lte=25"`
	History       History `yaml:"history"`
}

// History selects where run outcomes are journaled.
type History struct {
	Backend string `yaml:"backend" validate:"oneof=sqlite postgres none"`
	Path    string `yaml:"path"`
	DSN     string `yaml:"dsn"`
}

// Default returns the settings used when no m2t.yaml is present.
func Default() Settings {
	return Settings{
		MediaDir:      "media-files",
		TranscriptDir: "transcripts",
		TempDir:       "temp",
		Model:         "whisper-1",
		MaxChunkMB:    25,
		History: History{
			Backend: "sqlite",
			Path:    filepath.Join("data", "history.db"),
		},
	}
}

// MaxChunkBytes converts the configured cap to bytes. The 25 MiB ceiling is
// the transcription API's per-request limit.
func (s Settings) MaxChunkBytes() int64 {
	return int64(s.MaxChunkMB) * 1024 * 1024
}

// Load reads the settings file at path. A missing file yields defaults; a
// present but invalid file is a configuration error.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings %s: %w", path, err)
	}

	if err := validator.New().Struct(s); err != nil {
		return Settings{}, fmt.Errorf("invalid settings in %s: %w", path, err)
	}

	return s, nil
}
