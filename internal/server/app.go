// Package server initializes and runs the authentication server.
// It opens the credential store, builds the auth service and access gate,
// and serves HTTP until SIGINT or SIGTERM.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/dmitrijs2005/authkeeper/internal/server/config"
	"github.com/dmitrijs2005/authkeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/authkeeper/internal/server/services"
	"github.com/gin-gonic/gin"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repos       repomanager.RepositoryManager
	userService *services.UserService
	gate        *auth.Gate
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.Environment)
	return newApp(ctx, c, logger)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	rm, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if c.DatabaseDSN == "" {
		logger.Warn(ctx, "no database configured, users are kept in memory")
	}

	hasher, err := auth.NewPasswordHasher(c.BcryptCost)
	if err != nil {
		rm.Close()
		return nil, fmt.Errorf("password hasher: %w", err)
	}
	tokens := auth.NewTokenManager([]byte(c.SecretKey), c.TokenLifetime)

	us := services.NewUserService(rm.Users(), hasher, tokens, c, logger)

	return &App{config: c, logger: logger, repos: rm, userService: us, gate: auth.NewGate(tokens)}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewHTTPServer(app.config, app.logger, app.userService, app.gate)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is canceled or a termination signal arrives, then
// closes the credential store.
func (app *App) Run(ctx context.Context) {
	gin.SetMode(gin.ReleaseMode)

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "environment", app.config.Environment)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(context.Background(), "closing storage", "error", err)
	}
	app.logger.Info(context.Background(), "App stopped")
}
