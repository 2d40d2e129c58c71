// Package notification implements the notification repository using
// PostgreSQL.
package notification

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lexicon-backend/internal/domain"
)

const table = "notifications"

var columns = []string{"id", "user_id", "actor_id", "type", "term_id", "message", "read", "created_at"}

// Repo provides notification persistence.
type Repo struct {
	db postgres.Querier
}

// New creates a new notification repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a notification.
func (r *Repo) Create(ctx context.Context, n *domain.Notification) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := postgres.Exec(ctx, q, postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(n.ID, n.UserID, n.ActorID, string(n.Type), n.TermID, n.Message, n.Read, n.CreatedAt))
	if err != nil {
		return postgres.MapError(err, "notification", n.ID)
	}
	return nil
}

// ListByUser returns the notifications of a user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]domain.Notification, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id")
	if unreadOnly {
		b = b.Where(sq.Eq{"read": false})
	}

	var rows []notificationRow
	if err := postgres.Select(ctx, q, &rows, postgres.Page(b, limit, offset)); err != nil {
		return nil, postgres.MapError(err, "notification", userID)
	}

	out := make([]domain.Notification, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// CountUnread returns the number of unread notifications of a user.
func (r *Repo) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var n int64
	err := postgres.Get(ctx, q, &n, postgres.Builder().
		Select("count(*)").
		From(table).
		Where(sq.Eq{"user_id": userID, "read": false}))
	if err != nil {
		return 0, postgres.MapError(err, "notification", userID)
	}
	return int(n), nil
}

// MarkRead flags one notification of userID as read. A notification
// belonging to someone else is reported as not found.
func (r *Repo) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Update(table).
		Set("read", true).
		Where(sq.Eq{"id": id, "user_id": userID}))
	if err != nil {
		return postgres.MapError(err, "notification", id)
	}
	if n == 0 {
		return postgres.MapError(domain.ErrNotFound, "notification", id)
	}
	return nil
}

// MarkAllRead flags every unread notification of userID and returns how
// many changed.
func (r *Repo) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	n, err := postgres.Exec(ctx, q, postgres.Builder().
		Update(table).
		Set("read", true).
		Where(sq.Eq{"user_id": userID, "read": false}))
	if err != nil {
		return 0, postgres.MapError(err, "notification", userID)
	}
	return int(n), nil
}

type notificationRow struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	ActorID   *uuid.UUID `db:"actor_id"`
	Type      string     `db:"type"`
	TermID    *uuid.UUID `db:"term_id"`
	Message   string     `db:"message"`
	Read      bool       `db:"read"`
	CreatedAt time.Time  `db:"created_at"`
}

func (r notificationRow) toDomain() domain.Notification {
	return domain.Notification{
		ID:        r.ID,
		UserID:    r.UserID,
		ActorID:   r.ActorID,
		Type:      domain.NotificationType(r.Type),
		TermID:    r.TermID,
		Message:   r.Message,
		Read:      r.Read,
		CreatedAt: r.CreatedAt,
	}
}
