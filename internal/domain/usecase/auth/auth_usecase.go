package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/usecase"
)

// DefaultSessionTTL is used when no session lifetime is configured
const DefaultSessionTTL = 24 * time.Hour

// AuthUseCase implements credential verification and session issuance.
// Passwords are hashed with bcrypt; the hash never leaves this package in
// plaintext-comparable form.
type AuthUseCase struct {
	userRepo     persistence.UserRepository
	sessionRepo  persistence.SessionRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	sessionTTL   time.Duration
	bcryptCost   int
}

// NewAuthUseCase creates a new auth use case instance
func NewAuthUseCase(
	userRepo persistence.UserRepository,
	sessionRepo persistence.SessionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	sessionTTL time.Duration,
) usecase.AuthUseCase {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &AuthUseCase{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		timeProvider: timeProvider,
		logger:       logger,
		sessionTTL:   sessionTTL,
		bcryptCost:   bcrypt.DefaultCost,
	}
}

// Register creates a new account. Duplicate usernames are rejected whether
// they are caught by the pre-check or by the unique constraint underneath.
func (a *AuthUseCase) Register(ctx context.Context, username, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.ErrEmptyUsername
	}
	if password == "" {
		return nil, errs.ErrEmptyPassword
	}

	if _, err := a.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, errs.NewDuplicateUserError(username)
	} else if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		a.logger.Error("Failed to hash password", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	user, err := entity.NewUser(username, string(hash), a.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := a.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, errs.ErrDuplicateUser) {
			return nil, errs.NewDuplicateUserError(username)
		}
		a.logger.Error("Failed to create user", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, err
	}

	a.logger.Info("User registered", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})

	return user, nil
}

// Authenticate verifies the username/password pair and issues a session
// token. Unknown usernames and wrong passwords produce the identical error.
func (a *AuthUseCase) Authenticate(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)

	user, err := a.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return "", errs.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		a.logger.Warn("Login failed", map[string]any{
			"username": username,
		})
		return "", errs.ErrInvalidCredentials
	}

	session, err := entity.NewSession(uuid.NewString(), user.ID, a.sessionTTL, a.timeProvider)
	if err != nil {
		return "", err
	}

	if err := a.sessionRepo.Create(ctx, session); err != nil {
		a.logger.Error("Failed to persist session", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return "", err
	}

	a.logger.Info("User logged in", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})

	return session.Token, nil
}

// ResolveSession maps a session token to the owning user. Expired sessions
// are revoked on sight.
func (a *AuthUseCase) ResolveSession(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, errs.ErrInvalidSession
	}

	session, err := a.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if session.IsExpired(a.timeProvider.Now()) {
		if err := a.sessionRepo.Delete(ctx, token); err != nil {
			a.logger.Warn("Failed to remove expired session", map[string]any{
				"error": err.Error(),
			})
		}
		return nil, errs.ErrInvalidSession
	}

	user, err := a.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidSession
		}
		return nil, err
	}

	return user, nil
}

// Logout revokes a session token; revoking an unknown token succeeds silently
func (a *AuthUseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return a.sessionRepo.Delete(ctx, token)
}
