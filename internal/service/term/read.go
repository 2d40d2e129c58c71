package term

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"github.com/heartmarshall/lexicon-backend/internal/policy"
	"github.com/heartmarshall/lexicon-backend/pkg/ctxutil"
)

// Get returns a term the caller is allowed to see. Hidden terms are
// reported as not found.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Term, error) {
	t, err := s.terms.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("term.Get: %w", err)
	}
	if !visible(ctx, t) {
		return nil, fmt.Errorf("term.Get: term %s: %w", id, domain.ErrNotFound)
	}
	return t, nil
}

// List searches terms visible to the caller.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Term, error) {
	f := domain.TermFilter{
		CategoryID: input.CategoryID,
		AuthorID:   input.AuthorID,
		SortBy:     input.SortBy,
		SortOrder:  input.SortOrder,
		Limit:      input.Limit,
		Offset:     input.Offset,
	}
	if search := strings.TrimSpace(input.Search); search != "" {
		f.Search = &search
	}
	if input.Status != "" {
		status, ok := domain.NormalizeTermStatus(input.Status)
		if !ok {
			return nil, domain.NewValidationError("status", "unknown status")
		}
		f.Status = &status
	}
	if actor, ok := ctxutil.ActorFromCtx(ctx); ok {
		f.Privileged = policy.SeesAllTerms(actor)
		f.ViewerID = &actor.ID
	}

	terms, err := s.terms.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("term.List: %w", err)
	}
	return terms, nil
}

// checkCategory turns an unknown category into a validation error.
func (s *Service) checkCategory(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := s.categories.GetByID(ctx, *id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("categoryId", "unknown category")
		}
		return fmt.Errorf("get category: %w", err)
	}
	return nil
}
