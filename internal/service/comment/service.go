// Package comment manages remarks left on terms.
package comment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"github.com/heartmarshall/lexicon-backend/internal/policy"
	"github.com/heartmarshall/lexicon-backend/internal/sanitize"
	"github.com/heartmarshall/lexicon-backend/pkg/ctxutil"
)

// MaxContentLength is the longest accepted comment, counted after
// sanitizing.
const MaxContentLength = 2000

type commentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByTerm(ctx context.Context, termID uuid.UUID, limit, offset int) ([]domain.Comment, error)
	Create(ctx context.Context, c *domain.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type termRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Term, error)
}

type notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// Service provides comment operations.
type Service struct {
	log      *slog.Logger
	comments commentRepo
	terms    termRepo
	notify   notifier
}

// NewService creates a new comment service.
func NewService(logger *slog.Logger, comments commentRepo, terms termRepo, notify notifier) *Service {
	return &Service{
		log:      logger.With("service", "comment"),
		comments: comments,
		terms:    terms,
		notify:   notify,
	}
}

// List returns the comments of a term, oldest first.
func (s *Service) List(ctx context.Context, termID uuid.UUID, limit, offset int) ([]domain.Comment, error) {
	if _, err := s.terms.GetByID(ctx, termID); err != nil {
		return nil, fmt.Errorf("comment.List: %w", err)
	}

	out, err := s.comments.ListByTerm(ctx, termID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("comment.List: %w", err)
	}
	return out, nil
}

// Create sanitizes content and attaches it to a term.
func (s *Service) Create(ctx context.Context, termID uuid.UUID, content string) (*domain.Comment, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	clean := sanitize.Text(content)
	switch {
	case clean == "":
		return nil, domain.NewValidationError("content", "required")
	case utf8.RuneCountInString(clean) > MaxContentLength:
		return nil, domain.NewValidationError("content", "max 2000 characters")
	}

	term, err := s.terms.GetByID(ctx, termID)
	if err != nil {
		return nil, fmt.Errorf("comment.Create: %w", err)
	}

	c := &domain.Comment{
		ID:        uuid.New(),
		TermID:    termID,
		UserID:    actor.ID,
		Content:   clean,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("comment.Create: %w", err)
	}

	s.log.InfoContext(ctx, "comment created",
		slog.String("user_id", actor.ID.String()),
		slog.String("term_id", termID.String()),
		slog.String("comment_id", c.ID.String()),
	)

	s.notify.Notify(ctx, domain.Notification{
		UserID:  term.AuthorID,
		ActorID: &actor.ID,
		Type:    domain.NotificationComment,
		TermID:  &term.ID,
		Message: fmt.Sprintf("New comment on %q.", term.Title),
	})

	// Reload for the author name.
	created, err := s.comments.GetByID(ctx, c.ID)
	if err != nil {
		return c, nil
	}
	return created, nil
}

// Delete removes a comment. Allowed for its writer, admins, and the active
// author owning the term.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("comment.Delete: %w", err)
	}

	// A vanished term leaves no owner; only the author or an admin may delete.
	var ownerID uuid.UUID
	term, err := s.terms.GetByID(ctx, c.TermID)
	switch {
	case err == nil:
		ownerID = term.AuthorID
	case !errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("comment.Delete: %w", err)
	}
	if err := policy.CanDeleteComment(actor, c.UserID, ownerID); err != nil {
		return err
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		return fmt.Errorf("comment.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "comment deleted",
		slog.String("user_id", actor.ID.String()),
		slog.String("comment_id", id.String()),
	)
	return nil
}
