package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func Test_parseFile(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		path := writeTemp(t, "cfg.json", `{
			"address": "127.0.0.1:8080",
			"database_dsn": "postgres://u:p@db/auth",
			"secret_key": "k",
			"token_lifetime": "90s",
			"bcrypt_cost": 12,
			"store_timeout": 2000000000,
			"cors_allowed_origins": "http://localhost:5173"
		}`)

		var cfg Config
		cfg.LoadDefaults()
		require.NoError(t, parseFile(&cfg, []string{"-config", path}))

		assert.Equal(t, "127.0.0.1:8080", cfg.Address)
		assert.Equal(t, "postgres://u:p@db/auth", cfg.DatabaseDSN)
		assert.Equal(t, "k", cfg.SecretKey)
		assert.Equal(t, 90*time.Second, cfg.TokenLifetime)
		assert.Equal(t, 12, cfg.BcryptCost)
		assert.Equal(t, 2*time.Second, cfg.StoreTimeout)
		assert.Equal(t, "http://localhost:5173", cfg.CORSAllowedOrigins)
		assert.Equal(t, "development", cfg.Environment, "absent fields keep defaults")
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeTemp(t, "cfg.yaml", "secret_key: yaml-secret\ntoken_lifetime: 5m\nenvironment: production\n")

		var cfg Config
		cfg.LoadDefaults()
		require.NoError(t, parseFile(&cfg, []string{"-c", path}))

		assert.Equal(t, "yaml-secret", cfg.SecretKey)
		assert.Equal(t, 5*time.Minute, cfg.TokenLifetime)
		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, ":5000", cfg.Address)
	})

	t.Run("no flag leaves config untouched", func(t *testing.T) {
		cfg := Config{Address: "keep"}
		require.NoError(t, parseFile(&cfg, []string{"-a", ":1"}))
		assert.Equal(t, "keep", cfg.Address)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := writeTemp(t, "bad.json", `{ this is not valid json`)
		var cfg Config
		require.Error(t, parseFile(&cfg, []string{"-c", path}))
	})

	t.Run("missing file", func(t *testing.T) {
		var cfg Config
		require.Error(t, parseFile(&cfg, []string{"-c", filepath.Join(t.TempDir(), "nope.json")}))
	})
}
