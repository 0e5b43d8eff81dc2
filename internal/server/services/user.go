// Package services contains the server-side business logic. This file
// implements UserService: registration, login, and resolving the current
// user from a bearer token.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/shopfront/internal/common"
	"github.com/dmitrijs2005/shopfront/internal/cryptox"
	"github.com/dmitrijs2005/shopfront/internal/server/auth"
	"github.com/dmitrijs2005/shopfront/internal/server/models"
	"github.com/dmitrijs2005/shopfront/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
//   - Register: create users with hashed passwords
//   - Login: verify credentials and mint a token
//   - CurrentUser: resolve a token to a user, soft-failing to anonymous
type UserService struct {
	db     *sql.DB
	rm     repomanager.RepositoryManager
	tokens *auth.TokenManager
}

// NewUserService constructs a UserService using repositories and the token
// manager.
func NewUserService(db *sql.DB, rm repomanager.RepositoryManager, tokens *auth.TokenManager) *UserService {
	return &UserService{db: db, rm: rm, tokens: tokens}
}

// Register creates a new user with the given username and plaintext
// password. The password is hashed before it reaches storage; the plaintext
// is never persisted. A duplicate username fails with
// common.ErrUsernameTaken, backed by the storage uniqueness constraint so
// concurrent registrations cannot race past the check.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	return s.create(ctx, username, hash)
}

// RegisterPrehashed creates a user from an existing bcrypt hash. Used by
// seeding and account imports, where the plaintext is not available.
func (s *UserService) RegisterPrehashed(ctx context.Context, username, passwordHash string) (*models.User, error) {
	return s.create(ctx, username, passwordHash)
}

func (s *UserService) create(ctx context.Context, username, passwordHash string) (*models.User, error) {
	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}

	repo := s.rm.Users(s.db)
	if err := repo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, common.ErrUsernameTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and returns a signed access token. An
// unknown username and a wrong password are deliberately indistinguishable:
// both fail with common.ErrInvalidCredentials. A corrupted stored hash
// propagates as a hard error instead.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	repo := s.rm.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", fmt.Errorf("error looking up user: %w", err)
	}

	ok, err := cryptox.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		return "", common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", fmt.Errorf("error issuing token: %w", err)
	}

	return token, nil
}

// CurrentUser resolves a cookie-carried token to the user it identifies.
// An absent token, a failed verification, or an unknown subject all mean
// anonymous: the result is nil and no error reaches the caller.
func (s *UserService) CurrentUser(ctx context.Context, token string) *models.User {
	if token == "" {
		return nil
	}

	subject := s.tokens.Subject(token)
	if subject == "" {
		return nil
	}

	user, err := s.rm.Users(s.db).GetByUsername(ctx, subject)
	if err != nil {
		return nil
	}

	return user
}
