package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"github.com/heartmarshall/lexicon-backend/internal/policy"
	"github.com/heartmarshall/lexicon-backend/pkg/ctxutil"
)

// List returns users matching the filter (admin only).
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.User, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}

	filter, err := input.toFilter()
	if err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("user.List: %w", err)
	}
	return users, nil
}

// SetStatus approves, rejects, suspends or reactivates an account (admin
// only). Pending is only meaningful for authors. The user is notified.
func (s *Service) SetStatus(ctx context.Context, targetID uuid.UUID, rawStatus string) (*domain.User, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}

	status, ok := domain.NormalizeStatus(rawStatus)
	if !ok {
		return nil, domain.NewValidationError("status", "unknown status")
	}
	if targetID == actor.ID {
		return nil, domain.NewValidationError("status", "cannot change your own status")
	}

	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("user.SetStatus: %w", err)
	}
	if status == domain.UserStatusPending && target.Role != domain.UserRoleAuthor {
		return nil, domain.NewValidationError("status", "only authors can be pending")
	}
	if target.Status == status {
		return target, nil
	}

	updated, err := s.users.UpdateStatus(ctx, targetID, status)
	if err != nil {
		return nil, fmt.Errorf("user.SetStatus: %w", err)
	}

	s.log.InfoContext(ctx, "user status changed",
		slog.String("admin_id", actor.ID.String()),
		slog.String("target_user_id", targetID.String()),
		slog.String("from", string(target.Status)),
		slog.String("to", string(status)),
	)

	s.notify.Notify(ctx, domain.Notification{
		UserID:  targetID,
		ActorID: &actor.ID,
		Type:    domain.NotificationAccountStatus,
		Message: statusMessage(status),
	})

	return updated, nil
}

// PromoteToAdmin gives an account the admin role and activates it. It is an
// operator action run from the command line, outside any request.
func (s *Service) PromoteToAdmin(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("user.PromoteToAdmin: %w", err)
	}

	var promoted *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Status first: only authors may be pending.
		if _, err := s.users.UpdateStatus(txCtx, user.ID, domain.UserStatusActive); err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		u, err := s.users.UpdateRole(txCtx, user.ID, domain.UserRoleAdmin)
		if err != nil {
			return fmt.Errorf("update role: %w", err)
		}
		promoted = u
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.PromoteToAdmin: %w", err)
	}

	s.log.InfoContext(ctx, "user promoted to admin", slog.String("user_id", user.ID.String()))

	return promoted, nil
}

func statusMessage(status domain.UserStatus) string {
	switch status {
	case domain.UserStatusActive:
		return "Your account has been approved."
	case domain.UserStatusRejected:
		return "Your account request has been rejected."
	case domain.UserStatusSuspended:
		return "Your account has been suspended."
	default:
		return "Your account is awaiting approval."
	}
}
