package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
)

// Register creates a user with email + password credentials. The account
// status derives from the role: authors wait for approval, researchers are
// active at once. Returns ErrAlreadyExists if the email is taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)
	if strings.TrimSpace(input.Role) == "" {
		input.Role = string(domain.UserRoleResearcher)
	}

	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}
	role, _ := domain.NormalizeRole(input.Role)

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		Status:       domain.InitialStatusFor(role),
		FirstName:    domain.CollapseSpaces(input.FirstName),
		LastName:     domain.CollapseSpaces(input.LastName),
		Bio:          strings.TrimSpace(input.Bio),
		Phone:        strings.TrimSpace(input.Phone),
		Website:      strings.TrimSpace(input.Website),
		Socials:      input.Socials,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	result, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("role", string(user.Role)),
		slog.String("status", string(user.Status)),
	)

	return result, nil
}
