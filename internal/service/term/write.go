package term

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"github.com/heartmarshall/lexicon-backend/internal/policy"
	"github.com/heartmarshall/lexicon-backend/internal/sanitize"
	"github.com/heartmarshall/lexicon-backend/pkg/ctxutil"
)

// Create adds a term owned by the caller. Admins and active authors may
// create; the status defaults to published.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Term, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := policy.CanWriteTerm(actor, domain.TermActionCreate, uuid.Nil); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	status := domain.TermStatusPublished
	if input.Status != "" {
		status, _ = domain.NormalizeTermStatus(input.Status)
	}

	now := time.Now().UTC()
	created, err := s.terms.Create(ctx, &domain.Term{
		ID:         uuid.New(),
		Title:      domain.CollapseSpaces(input.Title),
		Definition: sanitize.Text(input.Definition),
		CategoryID: input.CategoryID,
		AuthorID:   actor.ID,
		Status:     status,
		Examples:   sanitize.Text(input.Examples),
		Sources:    sanitize.Text(input.Sources),
		Remarks:    sanitize.Text(input.Remarks),
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("term.Create: %w", err)
	}

	s.log.InfoContext(ctx, "term created",
		slog.String("user_id", actor.ID.String()),
		slog.String("term_id", created.ID.String()),
		slog.String("status", string(created.Status)),
	)

	return s.reload(ctx, created)
}

// Update applies a partial update, including a direct status change.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Term, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	current, err := s.terms.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("term.Update: %w", err)
	}
	if err := policy.CanWriteTerm(actor, domain.TermActionUpdate, current.AuthorID); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	changes := domain.TermChanges{
		CategoryID:    input.CategoryID,
		ClearCategory: input.ClearCategory,
		Definition:    sanitize.TextPtr(input.Definition),
		Examples:      sanitize.TextPtr(input.Examples),
		Sources:       sanitize.TextPtr(input.Sources),
		Remarks:       sanitize.TextPtr(input.Remarks),
	}
	if input.Title != nil {
		title := domain.CollapseSpaces(*input.Title)
		changes.Title = &title
	}
	if input.Status != nil {
		status, _ := domain.NormalizeTermStatus(strings.TrimSpace(*input.Status))
		changes.Status = &status
	}

	updated, err := s.terms.Update(ctx, id, changes)
	if err != nil {
		return nil, fmt.Errorf("term.Update: %w", err)
	}

	attrs := []any{
		slog.String("user_id", actor.ID.String()),
		slog.String("term_id", id.String()),
	}
	if changes.Status != nil && *changes.Status != current.Status {
		attrs = append(attrs,
			slog.String("from", string(current.Status)),
			slog.String("to", string(*changes.Status)),
		)
	}
	s.log.InfoContext(ctx, "term updated", attrs...)

	return s.reload(ctx, updated)
}

// Delete removes a term and everything attached to it.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	current, err := s.terms.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("term.Delete: %w", err)
	}
	if err := policy.CanWriteTerm(actor, domain.TermActionDelete, current.AuthorID); err != nil {
		return err
	}

	if err := s.terms.Delete(ctx, id); err != nil {
		return fmt.Errorf("term.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "term deleted",
		slog.String("user_id", actor.ID.String()),
		slog.String("term_id", id.String()),
	)
	return nil
}

// reload fetches the read model (author name, category label, likes) of a
// freshly written term. On failure the written row is returned as is.
func (s *Service) reload(ctx context.Context, t *domain.Term) (*domain.Term, error) {
	full, err := s.terms.GetByID(ctx, t.ID)
	if err != nil {
		s.log.WarnContext(ctx, "reload term", slog.String("term_id", t.ID.String()), slog.String("error", err.Error()))
		return t, nil
	}
	return full, nil
}
