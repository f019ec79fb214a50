package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/authkeeper/internal/client/client"
	"github.com/dmitrijs2005/authkeeper/internal/client/config"
)

// API is the part of client.APIClient the commands use.
type API interface {
	Register(ctx context.Context, name, email string, password []byte) (*client.Response, error)
	Login(ctx context.Context, email string, password []byte) (*client.Response, error)
	Logout(ctx context.Context) (*client.Response, error)
	Profile(ctx context.Context) (*client.Response, error)
}

type App struct {
	api    API
	reader *bufio.Reader
	out    io.Writer
	userID string
}

func NewApp(c *config.Config) (*App, error) {
	api, err := client.NewAPIClient(c.ServerURL, c.RequestTimeout)
	if err != nil {
		return nil, err
	}
	return newApp(api, os.Stdin, os.Stdout), nil
}

func newApp(api API, in io.Reader, out io.Writer) *App {
	return &App{api: api, reader: bufio.NewReader(in), out: out}
}

// Command returns the first positional argument in args, skipping the
// flags consumed by the config package. It is "" when there is none.
func Command(args []string) string {
	valued := map[string]bool{"-a": true, "-t": true, "-c": true, "-config": true}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") {
			if valued[arg] {
				i++
			}
			continue
		}
		return arg
	}
	return ""
}

// Run executes cmd once, or starts the interactive loop when cmd is empty.
func (a *App) Run(ctx context.Context, cmd string) {
	if cmd == "" {
		a.Root(ctx)
		return
	}
	a.dispatch(ctx, cmd)
}
