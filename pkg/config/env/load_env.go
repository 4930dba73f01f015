package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file. The ENV_PATH
// environment variable overrides the given default path. A missing file is
// not an error; experiment machines usually configure everything via flags.
func LoadDotEnv(defaultPath string) {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		envPath = defaultPath
	}

	if err := godotenv.Load(envPath); err != nil {
		slog.Debug("no .env file loaded", "path", envPath)
	}
}
