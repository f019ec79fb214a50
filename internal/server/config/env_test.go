package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv_Variables(t *testing.T) {
	t.Setenv("ADDRESS", ":6000")
	t.Setenv("DATABASE_DSN", "postgres://env/db")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("TOKEN_LIFETIME", "45s")
	t.Setenv("BCRYPT_COST", "11")
	t.Setenv("APP_ENV", "production")

	var cfg Config
	cfg.LoadDefaults()
	require.NoError(t, parseEnv(&cfg, ""))

	assert.Equal(t, ":6000", cfg.Address)
	assert.Equal(t, "postgres://env/db", cfg.DatabaseDSN)
	assert.Equal(t, "env-secret", cfg.SecretKey)
	assert.Equal(t, 45*time.Second, cfg.TokenLifetime)
	assert.Equal(t, 11, cfg.BcryptCost)
	assert.True(t, cfg.SecureCookies())
	assert.Equal(t, 5*time.Second, cfg.StoreTimeout, "unset variables keep defaults")
}

func Test_parseEnv_DotenvFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://already.set")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("JWT_SECRET=dotenv-secret\nCORS_ALLOWED_ORIGINS=http://from.file\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("JWT_SECRET") })

	var cfg Config
	cfg.LoadDefaults()
	require.NoError(t, parseEnv(&cfg, path))

	assert.Equal(t, "dotenv-secret", cfg.SecretKey)
	assert.Equal(t, "http://already.set", cfg.CORSAllowedOrigins, "process env wins over .env")
}

func Test_parseEnv_MissingDotenvIgnored(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()
	require.NoError(t, parseEnv(&cfg, filepath.Join(t.TempDir(), ".env")))
}

func Test_parseEnv_BadDuration(t *testing.T) {
	t.Setenv("TOKEN_LIFETIME", "forever")

	var cfg Config
	require.Error(t, parseEnv(&cfg, ""))
}
