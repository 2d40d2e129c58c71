// Package like toggles and counts term likes.
package like

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"github.com/heartmarshall/lexicon-backend/pkg/ctxutil"
)

type likeRepo interface {
	Exists(ctx context.Context, userID, termID uuid.UUID) (bool, error)
	Insert(ctx context.Context, userID, termID uuid.UUID) error
	Delete(ctx context.Context, userID, termID uuid.UUID) (bool, error)
	Count(ctx context.Context, termID uuid.UUID) (int, error)
}

type termRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Term, error)
}

type notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides like operations.
type Service struct {
	log    *slog.Logger
	likes  likeRepo
	terms  termRepo
	notify notifier
	tx     txManager
}

// NewService creates a new like service.
func NewService(logger *slog.Logger, likes likeRepo, terms termRepo, notify notifier, tx txManager) *Service {
	return &Service{
		log:    logger.With("service", "like"),
		likes:  likes,
		terms:  terms,
		notify: notify,
		tx:     tx,
	}
}

// Toggle removes the caller's like if present, otherwise adds it, and
// returns the new state with the recomputed count.
func (s *Service) Toggle(ctx context.Context, termID uuid.UUID) (domain.LikeStatus, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.LikeStatus{}, domain.ErrUnauthorized
	}

	term, err := s.terms.GetByID(ctx, termID)
	if err != nil {
		return domain.LikeStatus{}, fmt.Errorf("like.Toggle: %w", err)
	}

	var status domain.LikeStatus
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		removed, err := s.likes.Delete(txCtx, actor.ID, termID)
		if err != nil {
			return fmt.Errorf("delete like: %w", err)
		}
		if !removed {
			if err := s.likes.Insert(txCtx, actor.ID, termID); err != nil {
				if errors.Is(err, domain.ErrAlreadyExists) {
					return fmt.Errorf("concurrent like: %w", domain.ErrConflict)
				}
				return fmt.Errorf("insert like: %w", err)
			}
		}
		status.Liked = !removed

		status.Count, err = s.likes.Count(txCtx, termID)
		if err != nil {
			return fmt.Errorf("count likes: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.LikeStatus{}, fmt.Errorf("like.Toggle: %w", err)
	}

	s.log.InfoContext(ctx, "like toggled",
		slog.String("user_id", actor.ID.String()),
		slog.String("term_id", termID.String()),
		slog.Bool("liked", status.Liked),
	)

	if status.Liked {
		s.notify.Notify(ctx, domain.Notification{
			UserID:  term.AuthorID,
			ActorID: &actor.ID,
			Type:    domain.NotificationLike,
			TermID:  &term.ID,
			Message: fmt.Sprintf("Someone liked %q.", term.Title),
		})
	}

	return status, nil
}

// Count returns the number of likes on a term.
func (s *Service) Count(ctx context.Context, termID uuid.UUID) (int, error) {
	if _, err := s.terms.GetByID(ctx, termID); err != nil {
		return 0, fmt.Errorf("like.Count: %w", err)
	}

	n, err := s.likes.Count(ctx, termID)
	if err != nil {
		return 0, fmt.Errorf("like.Count: %w", err)
	}
	return n, nil
}

// Status returns whether the caller likes a term, with the like count.
func (s *Service) Status(ctx context.Context, termID uuid.UUID) (domain.LikeStatus, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.LikeStatus{}, domain.ErrUnauthorized
	}

	n, err := s.Count(ctx, termID)
	if err != nil {
		return domain.LikeStatus{}, err
	}
	liked, err := s.likes.Exists(ctx, actor.ID, termID)
	if err != nil {
		return domain.LikeStatus{}, fmt.Errorf("like.Status: %w", err)
	}
	return domain.LikeStatus{Liked: liked, Count: n}, nil
}
