package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/dmitrijs2005/authkeeper/internal/server/services"
	"github.com/gin-gonic/gin"
)

// AuthService is what the handlers need from services.UserService.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (*services.Session, error)
	Logout(ctx context.Context) error
}

type Handler struct {
	users         AuthService
	logger        logging.Logger
	secureCookies bool
}

func (h *Handler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Welcome to the secure authentication backend!")
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, common.ErrValidation, "")
		return
	}

	userID, err := h.users.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.fail(c, err, "Server error during registration")
		return
	}

	c.JSON(http.StatusCreated, userResponse{Message: "User registered successfully", UserID: userID})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, common.ErrValidation, "")
		return
	}

	session, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(c, err, "Server error during login")
		return
	}

	setSessionCookie(c.Writer, session.Token, session.MaxAge, h.secureCookies)
	c.JSON(http.StatusOK, userResponse{Message: "Logged in successfully", UserID: session.UserID})
}

func (h *Handler) Logout(c *gin.Context) {
	_ = h.users.Logout(c.Request.Context())
	clearSessionCookie(c.Writer, h.secureCookies)
	c.JSON(http.StatusOK, messageResponse{Message: "Logged out successfully"})
}

// Profile is the protected resource; RequireSession runs first.
func (h *Handler) Profile(c *gin.Context) {
	userID, ok := auth.UserIDFromContext(c.Request.Context())
	if !ok {
		h.fail(c, common.ErrUnauthenticated, "")
		return
	}
	c.JSON(http.StatusOK, userResponse{
		Message: fmt.Sprintf("Welcome to your profile, user ID: %s!", userID),
		UserID:  userID,
	})
}

func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	status, body := ToAPIError(err, fallback)
	if status >= http.StatusInternalServerError {
		h.logger.Error(c.Request.Context(), "request failed", "path", c.Request.URL.Path, "error", err)
	}
	c.JSON(status, body)
}
