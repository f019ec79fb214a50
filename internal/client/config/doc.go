// Package config loads runtime configuration for the authkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the authkeeper server
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either
// a string like "10s" or integer nanoseconds:
//
//	{
//	  "server_url": "http://localhost:5000",
//	  "request_timeout": "10s"
//	}
package config
