package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"github.com/heartmarshall/lexicon-backend/internal/sanitize"
	"github.com/heartmarshall/lexicon-backend/pkg/ctxutil"
)

// GetProfile returns a user's profile.
func (s *Service) GetProfile(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}
	return user, nil
}

// UpdateMe updates the caller's profile. Role and status are never touched
// here.
func (s *Service) UpdateMe(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	upd := domain.ProfileUpdate{
		FirstName: collapse(input.FirstName),
		LastName:  collapse(input.LastName),
		Bio:       sanitize.TextPtr(input.Bio),
		Phone:     trim(input.Phone),
		Website:   trim(input.Website),
		Socials:   input.Socials,
	}

	user, err := s.users.UpdateProfile(ctx, userID, upd)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateMe: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated", slog.String("user_id", userID.String()))

	return user, nil
}

func collapse(s *string) *string {
	if s == nil {
		return nil
	}
	v := domain.CollapseSpaces(*s)
	return &v
}

func trim(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
