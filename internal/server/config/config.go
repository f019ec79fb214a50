// Package config handles configuration for the authkeeper server:
// defaults, an optional JSON/YAML file, the environment (plus a .env file)
// and command-line flags, applied in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime settings for the server. It is built once at startup
// and passed by pointer to every component that needs it.
//
// Fields:
//   - Address: bind address of the HTTP listener.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//   - TokenLifetime: session token validity in whole seconds, also used as cookie Max-Age.
//   - BcryptCost: work factor for password hashing.
//   - StoreTimeout: upper bound for a single credential store call.
//   - Environment: "development" or "production"; production sets Secure cookies.
//   - CORSAllowedOrigins: comma separated list of allowed origins; "*" is refused in production.
//   - ShutdownTimeout: grace period for in-flight requests on shutdown.
type Config struct {
	Address            string        `env:"ADDRESS"`
	DatabaseDSN        string        `env:"DATABASE_DSN"`
	SecretKey          string        `env:"JWT_SECRET"`
	TokenLifetime      time.Duration `env:"TOKEN_LIFETIME"`
	BcryptCost         int           `env:"BCRYPT_COST"`
	StoreTimeout       time.Duration `env:"STORE_TIMEOUT"`
	Environment        string        `env:"APP_ENV"`
	CORSAllowedOrigins string        `env:"CORS_ALLOWED_ORIGINS"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

const EnvironmentProduction = "production"

// LoadDefaults populates Config with development defaults. SecretKey is left
// empty on purpose: the server refuses to start without one.
func (c *Config) LoadDefaults() {
	c.Address = ":5000"
	c.DatabaseDSN = ""
	c.TokenLifetime = 1 * time.Minute
	c.BcryptCost = 10
	c.StoreTimeout = 5 * time.Second
	c.Environment = "development"
	c.CORSAllowedOrigins = "*"
	c.ShutdownTimeout = 30 * time.Second
}

// SecureCookies reports whether session cookies carry the Secure attribute.
func (c *Config) SecureCookies() bool {
	return c.Environment == EnvironmentProduction
}

// Validate checks the startup preconditions.
func (c *Config) Validate() error {
	var errs []error
	if c.SecretKey == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	// Token claims and the cookie Max-Age both count whole seconds.
	if c.TokenLifetime < time.Second || c.TokenLifetime%time.Second != 0 {
		errs = append(errs, fmt.Errorf("token lifetime must be a positive whole number of seconds, got %s", c.TokenLifetime))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("bcrypt cost must be within [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost))
	}
	if c.StoreTimeout <= 0 {
		errs = append(errs, fmt.Errorf("store timeout must be positive, got %s", c.StoreTimeout))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout))
	}
	if c.Environment == EnvironmentProduction && allowsAnyOrigin(c.CORSAllowedOrigins) {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must list explicit origins in production"))
	}
	return errors.Join(errs...)
}

// allowsAnyOrigin reports whether origins, a comma separated list, is empty
// or contains the "*" wildcard.
func allowsAnyOrigin(origins string) bool {
	listed := false
	for _, o := range strings.Split(origins, ",") {
		switch strings.TrimSpace(o) {
		case "*":
			return true
		case "":
		default:
			listed = true
		}
	}
	return !listed
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional config file, the environment and finally command-line
// flags. args are the command-line arguments without the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseEnv(cfg, ".env"); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad is LoadConfig for main: it prints the error and exits.
func MustLoad(args []string) *Config {
	cfg, err := LoadConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
