// Package services contains server-side business logic. UserService handles
// registration, login and logout and knows nothing about HTTP: it takes
// plain values and returns plain values or common.* errors.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/dmitrijs2005/authkeeper/internal/server/config"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/dmitrijs2005/authkeeper/internal/server/repositories/users"
)

// Session is the outcome of a successful login. The transport hands Token
// to the client as a cookie that lives for MaxAge.
type Session struct {
	UserID    string
	Token     string
	ExpiresAt time.Time
	MaxAge    time.Duration
}

// UserService provides authentication-related operations:
// - Register: create users with a bcrypt password hash
// - Login: verify credentials and mint a session token
// - Logout: nothing to clean up server side
type UserService struct {
	users        users.Repository
	hasher       *auth.PasswordHasher
	tokens       *auth.TokenManager
	storeTimeout time.Duration
	logger       logging.Logger
}

// NewUserService constructs a UserService from its collaborators and the
// server config.
func NewUserService(repo users.Repository, hasher *auth.PasswordHasher, tokens *auth.TokenManager, cfg *config.Config, l logging.Logger) *UserService {
	return &UserService{
		users:        repo,
		hasher:       hasher,
		tokens:       tokens,
		storeTimeout: cfg.StoreTimeout,
		logger:       l.With("module", "user_service"),
	}
}

// Register creates a user and returns its id. A taken email yields
// common.ErrUserExists whether it is caught by the lookup or by the
// store's uniqueness constraint.
func (s *UserService) Register(ctx context.Context, name, email, password string) (string, error) {
	if name == "" || email == "" || password == "" {
		return "", common.ErrValidation
	}

	existing, err := s.findByEmail(ctx, email)
	if err != nil {
		s.logger.Error(ctx, "registration lookup failed", "error", err)
		return "", common.ErrStorage
	}
	if existing != nil {
		return "", common.ErrUserExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if auth.IsPasswordTooLong(err) {
			return "", common.ErrValidation
		}
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return "", common.ErrInternal
	}

	user, err := s.create(ctx, &models.User{Name: name, Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrUserExists) {
			return "", common.ErrUserExists
		}
		s.logger.Error(ctx, "registration insert failed", "error", err)
		return "", common.ErrStorage
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)
	return user.ID, nil
}

// Login checks email and password and mints a session token. Unknown email
// and wrong password produce the same common.ErrInvalidCredentials and cost
// one bcrypt comparison each.
func (s *UserService) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, common.ErrValidation
	}

	user, err := s.findByEmail(ctx, email)
	if err != nil {
		s.logger.Error(ctx, "login lookup failed", "error", err)
		return nil, common.ErrStorage
	}
	if user == nil {
		s.hasher.CompareDummy(password)
		return nil, common.ErrInvalidCredentials
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return nil, common.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		s.logger.Error(ctx, "token signing failed", "error", err)
		return nil, common.ErrInternal
	}

	s.logger.Info(ctx, "user logged in", "user_id", user.ID)
	return &Session{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt,
		MaxAge:    s.tokens.Lifetime(),
	}, nil
}

// Logout always succeeds: tokens are stateless, so the only effect is the
// cookie the transport clears. A still-unexpired copy of the token keeps
// working until it expires.
func (s *UserService) Logout(ctx context.Context) error {
	s.logger.Debug(ctx, "user logged out")
	return nil
}

// --- helpers below ---

func (s *UserService) findByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	return s.users.FindByEmail(ctx, email)
}

func (s *UserService) create(ctx context.Context, u *models.User) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	return s.users.Create(ctx, u)
}
