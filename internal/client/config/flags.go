package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   base URL of the server
//	-t int      request timeout in seconds
//
// Only -a and -t are looked at; everything else in args belongs to the
// command being run.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-t"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the server")
	timeout := fs.Int("t", 0, "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *timeout > 0 {
		cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	}
	return nil
}
