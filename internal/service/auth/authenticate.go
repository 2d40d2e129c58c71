package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"github.com/heartmarshall/lexicon-backend/pkg/ctxutil"
)

// Authenticate resolves a bearer token to the current actor. The user row is
// reloaded so that role and status changes apply to existing tokens.
func (s *Service) Authenticate(ctx context.Context, token string) (domain.Actor, error) {
	claims, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return domain.Actor{}, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Actor{}, domain.ErrUnauthorized
		}
		return domain.Actor{}, fmt.Errorf("auth.Authenticate get user: %w", err)
	}

	if err := checkActive(user); err != nil {
		return domain.Actor{}, err
	}

	return user.Actor(), nil
}

// Me returns the authenticated user.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}
