// Package term implements term reads and writes under the role, status and
// ownership rules.
package term

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"github.com/heartmarshall/lexicon-backend/internal/policy"
	"github.com/heartmarshall/lexicon-backend/pkg/ctxutil"
)

type termRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Term, error)
	List(ctx context.Context, f domain.TermFilter) ([]domain.Term, error)
	Create(ctx context.Context, t *domain.Term) (*domain.Term, error)
	Update(ctx context.Context, id uuid.UUID, c domain.TermChanges) (*domain.Term, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
}

// Service provides term operations.
type Service struct {
	log        *slog.Logger
	terms      termRepo
	categories categoryRepo
}

// NewService creates a new term service.
func NewService(logger *slog.Logger, terms termRepo, categories categoryRepo) *Service {
	return &Service{
		log:        logger.With("service", "term"),
		terms:      terms,
		categories: categories,
	}
}

// visible reports whether t may be shown to the caller. Published terms are
// public; others are shown to their owner, admins and researchers.
func visible(ctx context.Context, t *domain.Term) bool {
	if t.Status == domain.TermStatusPublished {
		return true
	}
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return false
	}
	return policy.SeesAllTerms(actor) || actor.ID == t.AuthorID
}
