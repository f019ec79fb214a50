// Package httpapi is the HTTP transport of the server: gin routing, the
// session cookie, the access gate middleware and the mapping of service
// errors to JSON responses.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/dmitrijs2005/authkeeper/internal/server/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	address         string
	shutdownTimeout time.Duration
	router          *gin.Engine
	httpServer      *http.Server
	logger          logging.Logger
}

// NewHTTPServer wires routes, CORS and middleware around the auth service
// and the access gate.
func NewHTTPServer(cfg *config.Config, l logging.Logger, users AuthService, gate *auth.Gate) *HTTPServer {
	logger := l.With("module", "http_server")

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger), cors.New(corsConfig(cfg.CORSAllowedOrigins)))

	h := &Handler{users: users, logger: logger, secureCookies: cfg.SecureCookies()}

	router.GET("/", h.Root)

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		authRoutes.POST("/register", h.Register)
		authRoutes.POST("/login", h.Login)
		authRoutes.POST("/logout", h.Logout)

		api.GET("/profile", RequireSession(gate, logger), h.Profile)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, messageResponse{Message: "Not found"})
	})

	return &HTTPServer{
		address:         cfg.Address,
		shutdownTimeout: cfg.ShutdownTimeout,
		router:          router,
		httpServer:      &http.Server{Handler: router, ReadHeaderTimeout: 10 * time.Second},
		logger:          logger,
	}
}

// Handler exposes the router, mainly for httptest.
func (s *HTTPServer) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address and serves until ctx is canceled,
// then drains in-flight requests for at most the shutdown timeout.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve is Run on an existing listener.
func (s *HTTPServer) Serve(ctx context.Context, listen net.Listener) error {
	stopped := make(chan error, 1)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		stopped <- s.httpServer.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := s.httpServer.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-stopped
}

// corsConfig allows credentials from the given comma separated origins.
// "*" reflects any request origin, since browsers refuse a literal "*"
// together with credentials.
func corsConfig(origins string) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{"Set-Cookie"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	var list []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			list = append(list, o)
		}
	}

	if len(list) == 0 || (len(list) == 1 && list[0] == "*") {
		c.AllowOriginFunc = func(string) bool { return true }
		return c
	}
	c.AllowOrigins = list
	return c
}
