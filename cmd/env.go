package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// EnvFileVar names the variable that points at the dotenv file
const EnvFileVar = "PT_ENV_FILE"

const defaultEnvFile = ".env"

// LoadEnv reads KEY=VALUE pairs from the dotenv file into the process
// environment. Variables that are already set win. A missing default .env is
// ignored; a missing file named explicitly through PT_ENV_FILE is an error.
func LoadEnv() error {
	path := getEnv(EnvFileVar, defaultEnvFile)
	if err := godotenv.Load(path); err != nil {
		if path == defaultEnvFile && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
