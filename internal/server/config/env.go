package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv loads dotenvPath (when present) into the process environment and
// then overlays every variable named in Config's env tags. Variables that
// are already set in the environment win over the .env file; unset
// variables leave the current value untouched.
func parseEnv(cfg *Config, dotenvPath string) error {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return env.Parse(cfg)
}
