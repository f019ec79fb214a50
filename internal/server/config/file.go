package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/authkeeper/internal/flagx"
	"github.com/dmitrijs2005/authkeeper/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the configuration. Durations accept
// both "1m" style strings and integer nanoseconds.
type FileConfig struct {
	Address            string         `json:"address" yaml:"address"`
	DatabaseDSN        string         `json:"database_dsn" yaml:"database_dsn"`
	SecretKey          string         `json:"secret_key" yaml:"secret_key"`
	TokenLifetime      timex.Duration `json:"token_lifetime" yaml:"token_lifetime"`
	BcryptCost         int            `json:"bcrypt_cost" yaml:"bcrypt_cost"`
	StoreTimeout       timex.Duration `json:"store_timeout" yaml:"store_timeout"`
	Environment        string         `json:"environment" yaml:"environment"`
	CORSAllowedOrigins string         `json:"cors_allowed_origins" yaml:"cors_allowed_origins"`
	ShutdownTimeout    timex.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// parseFile overlays values from the file named by -c/-config. Files ending
// in .yaml or .yml are decoded as YAML, everything else as JSON. Only
// fields present in the file replace the current values.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	fc := &FileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, fc)
	default:
		err = json.Unmarshal(data, fc)
	}
	if err != nil {
		return err
	}

	fc.apply(cfg)
	return nil
}

func (fc *FileConfig) apply(cfg *Config) {
	setString(&cfg.Address, fc.Address)
	setString(&cfg.DatabaseDSN, fc.DatabaseDSN)
	setString(&cfg.SecretKey, fc.SecretKey)
	setString(&cfg.Environment, fc.Environment)
	setString(&cfg.CORSAllowedOrigins, fc.CORSAllowedOrigins)
	if fc.TokenLifetime.Duration != 0 {
		cfg.TokenLifetime = fc.TokenLifetime.Duration
	}
	if fc.StoreTimeout.Duration != 0 {
		cfg.StoreTimeout = fc.StoreTimeout.Duration
	}
	if fc.ShutdownTimeout.Duration != 0 {
		cfg.ShutdownTimeout = fc.ShutdownTimeout.Duration
	}
	if fc.BcryptCost != 0 {
		cfg.BcryptCost = fc.BcryptCost
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
