package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:5000", c.ServerURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", cfg.ServerURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"server_url":      "http://file:1",
		"request_timeout": "3s",
	})

	cfg, err := LoadConfig([]string{"-c", path, "-a", "http://flag:2", "login"})
	require.NoError(t, err)
	assert.Equal(t, "http://flag:2", cfg.ServerURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_TimeoutFlag(t *testing.T) {
	cfg, err := LoadConfig([]string{"-t", "4", "profile"})
	require.NoError(t, err)
	assert.Equal(t, 4*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_BadFlag(t *testing.T) {
	_, err := LoadConfig([]string{"-t", "soon"})
	assert.Error(t, err)
}
