package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-todo-list/internal/hasher"
	"github.com/sbilibin2017/gw-todo-list/internal/logger"
	"github.com/sbilibin2017/gw-todo-list/internal/models"
)

//go:generate mockgen -source=auth.go -destination=mock_auth_test.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, email, passwordHash string) (*models.User, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenIssuer issues access tokens.
type TokenIssuer interface {
	Issue(ctx context.Context, userID int64, email string) (string, error)
}

// AuthService handles signup and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	hasher PasswordHasher
	tokens TokenIssuer

	// dummyHash is compared against when the email is unknown, so a failed
	// login costs the same whether or not the account exists.
	dummyHash string
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, hasher PasswordHasher, tokens TokenIssuer) *AuthService {
	dummyHash, err := hasher.Hash("dummy-password-for-timing")
	if err != nil {
		logger.Log.Warnw("failed to prepare dummy hash", "err", err)
	}

	return &AuthService{
		reader:    reader,
		writer:    writer,
		hasher:    hasher,
		tokens:    tokens,
		dummyHash: dummyHash,
	}
}

// Signup registers a new user and returns it with an access token.
func (svc *AuthService) Signup(ctx context.Context, email, password string) (*models.User, string, error) {
	if err := validateStruct(models.SignupRequest{Email: email, Password: password}); err != nil {
		return nil, "", err
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, "", err
	}
	if existing != nil {
		logger.Log.Infow("email already registered", "email", email)
		return nil, "", ErrEmailAlreadyExists
	}

	passwordHash, err := svc.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, hasher.ErrPasswordTooLong) {
			return nil, "", newValidationError("password", "must be at most 72 bytes")
		}
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	user, err := svc.writer.Create(ctx, email, passwordHash)
	if err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			logger.Log.Infow("email registered concurrently", "email", email)
			return nil, "", ErrEmailAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	token, err := svc.tokens.Issue(ctx, user.ID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to issue token", "userID", user.ID, "err", err)
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

// Login authenticates a user and returns it with an access token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if err := validateStruct(models.LoginRequest{Email: email, Password: password}); err != nil {
		return nil, "", err
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		svc.hasher.Verify(password, svc.dummyHash)
		logger.Log.Infow("login for unknown email", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if !svc.hasher.Verify(password, user.PasswordHash) {
		logger.Log.Infow("invalid credentials", "userID", user.ID)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.tokens.Issue(ctx, user.ID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to issue token", "userID", user.ID, "err", err)
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}
