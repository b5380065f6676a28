package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names understood by the CLI.
const (
	EnvLevels   = "ARCADE_LEVELS"
	EnvDB       = "ARCADE_DB"
	EnvFPS      = "ARCADE_FPS"
	EnvLogLevel = "ARCADE_LOG_LEVEL"
)

// Env holds overrides read from the environment (and an optional .env file).
// Empty/zero fields mean "not set".
type Env struct {
	LevelsFile string
	DBPath     string
	FPS        int
	LogLevel   string
}

// LoadEnv loads the given dotenv files (".env" when none are given) into the
// process environment and returns the ARCADE_* overrides. A missing dotenv
// file is not an error; existing environment variables win over the file.
func LoadEnv(files ...string) (Env, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Env{}, fmt.Errorf("config: loading dotenv: %w", err)
	}

	env := Env{
		LevelsFile: os.Getenv(EnvLevels),
		DBPath:     os.Getenv(EnvDB),
		LogLevel:   os.Getenv(EnvLogLevel),
	}

	if raw, ok := os.LookupEnv(EnvFPS); ok && raw != "" {
		fps, err := strconv.Atoi(raw)
		if err != nil || fps <= 0 {
			return env, fmt.Errorf("%w: %s must be a positive integer, got %q", ErrInvalid, EnvFPS, raw)
		}
		env.FPS = fps
	}

	return env, nil
}

// StringOr returns v, or fallback when v is empty.
func StringOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
