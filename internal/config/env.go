package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// EnvFile is the local environment file holding the API credential.
	EnvFile = ".env"

	apiKeyVar      = "OPENAI_API_KEY"
	placeholderKey = "your_api_key_here"
)

const envTemplate = "# OpenAI API Configuration\nOPENAI_API_KEY=your_api_key_here\n"

// ErrMissingAPIKey reports an absent or placeholder OpenAI credential. It is
// fatal before any processing starts.
var ErrMissingAPIKey = errors.New("no valid OPENAI_API_KEY configured")

// EnsureAPIKey reads the OpenAI credential from the env file at path. When
// the file does not exist a template is written so the user only has to fill
// in the key, and the run is aborted via ErrMissingAPIKey.
func EnsureAPIKey(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if werr := os.WriteFile(path, []byte(envTemplate), 0o644); werr != nil {
			return "", fmt.Errorf("create %s template: %w", path, werr)
		}
		return "", fmt.Errorf("%w: created %s, add your OpenAI API key to it", ErrMissingAPIKey, path)
	}

	if err := godotenv.Load(path); err != nil {
		return "", fmt.Errorf("load %s: %w", path, err)
	}

	key := strings.TrimSpace(os.Getenv(apiKeyVar))
	if key == "" || key == placeholderKey {
		return "", fmt.Errorf("%w: set %s in %s", ErrMissingAPIKey, apiKeyVar, path)
	}

	return key, nil
}
