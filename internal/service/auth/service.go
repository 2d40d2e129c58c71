package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/auth"
	"github.com/heartmarshall/lexicon-backend/internal/config"
	"github.com/heartmarshall/lexicon-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// tokenManager signs and verifies bearer tokens.
type tokenManager interface {
	GenerateAccessToken(userID uuid.UUID, role domain.UserRole) (string, time.Time, error)
	ValidateAccessToken(token string) (auth.Claims, error)
}

// passwordHasher hashes and compares passwords.
type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// Service implements registration, login and bearer-token authentication.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenManager
	hasher passwordHasher
	cfg    config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenManager,
	hasher passwordHasher,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		tokens: tokens,
		hasher: hasher,
		cfg:    cfg,
	}
}

// issueToken signs an access token for user.
func (s *Service) issueToken(user *domain.User) (*AuthResult, error) {
	token, expiresAt, err := s.tokens.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	return &AuthResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// checkActive rejects accounts an admin has rejected or suspended.
func checkActive(user *domain.User) error {
	switch user.Status {
	case domain.UserStatusRejected, domain.UserStatusSuspended:
		return domain.Deny(domain.DenyAccountInactive)
	}
	return nil
}
