// Package notification stores notifications and fans them out to live
// subscribers. Delivery is best effort: Notify never fails its caller.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"github.com/heartmarshall/lexicon-backend/pkg/ctxutil"
)

type notificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
}

type publisher interface {
	Publish(ctx context.Context, n domain.Notification) error
}

// Service implements notification delivery and inbox operations.
type Service struct {
	log           *slog.Logger
	notifications notificationRepo
	pub           publisher
}

// NewService creates a notification service. pub may be nil when no live
// fan-out is configured.
func NewService(logger *slog.Logger, notifications notificationRepo, pub publisher) *Service {
	return &Service{
		log:           logger.With("service", "notification"),
		notifications: notifications,
		pub:           pub,
	}
}

// Notify stores n and publishes it. Notifications addressed to their own
// actor are skipped. Errors are logged and dropped.
func (s *Service) Notify(ctx context.Context, n domain.Notification) {
	if n.UserID == uuid.Nil {
		return
	}
	if n.ActorID != nil && *n.ActorID == n.UserID {
		return
	}

	// The request may end before delivery completes.
	ctx = context.WithoutCancel(ctx)

	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	if err := s.notifications.Create(ctx, &n); err != nil {
		s.log.WarnContext(ctx, "notification dropped",
			slog.String("user_id", n.UserID.String()),
			slog.String("type", string(n.Type)),
			slog.String("error", err.Error()),
		)
		return
	}

	if s.pub == nil {
		return
	}
	if err := s.pub.Publish(ctx, n); err != nil {
		s.log.WarnContext(ctx, "notification not published",
			slog.String("notification_id", n.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// ListInput holds the parameters for listing the caller's notifications.
type ListInput struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

// ListResult is a page of notifications plus the unread total.
type ListResult struct {
	Items  []domain.Notification
	Unread int
}

// List returns the caller's notifications, newest first.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	items, err := s.notifications.ListByUser(ctx, userID, input.UnreadOnly, input.Limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("notification.List: %w", err)
	}

	unread, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("notification.List count unread: %w", err)
	}

	return &ListResult{Items: items, Unread: unread}, nil
}

// MarkRead flags one of the caller's notifications as read.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.notifications.MarkRead(ctx, userID, id); err != nil {
		return fmt.Errorf("notification.MarkRead: %w", err)
	}
	return nil
}

// MarkAllRead flags every unread notification of the caller and returns the
// number changed.
func (s *Service) MarkAllRead(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, err := s.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("notification.MarkAllRead: %w", err)
	}

	s.log.InfoContext(ctx, "notifications marked read",
		slog.String("user_id", userID.String()),
		slog.Int("count", n),
	)
	return n, nil
}
