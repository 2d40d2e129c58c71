// Package category manages term categories. Reads are public, writes are
// reserved to admins.
package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"github.com/heartmarshall/lexicon-backend/internal/policy"
	"github.com/heartmarshall/lexicon-backend/internal/sanitize"
	"github.com/heartmarshall/lexicon-backend/pkg/ctxutil"
)

type categoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, id uuid.UUID, label, description string) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service provides category operations.
type Service struct {
	log        *slog.Logger
	categories categoryRepo
}

// NewService creates a new category service.
func NewService(logger *slog.Logger, categories categoryRepo) *Service {
	return &Service{
		log:        logger.With("service", "category"),
		categories: categories,
	}
}

// Input holds the editable fields of a category.
type Input struct {
	Label       string
	Description string
}

// Validate checks all fields and collects all errors.
func (i Input) Validate() error {
	var errs []domain.FieldError

	label := strings.TrimSpace(i.Label)
	if label == "" {
		errs = append(errs, domain.FieldError{Field: "label", Message: "required"})
	} else if utf8.RuneCountInString(label) > 100 {
		errs = append(errs, domain.FieldError{Field: "label", Message: "max 100 characters"})
	}
	if utf8.RuneCountInString(i.Description) > 1000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// List returns every category.
func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("category.List: %w", err)
	}
	return cats, nil
}

// Get returns one category.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("category.Get: %w", err)
	}
	return c, nil
}

// Create adds a category. A duplicate label is a conflict.
func (s *Service) Create(ctx context.Context, input Input) (*domain.Category, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	c, err := s.categories.Create(ctx, &domain.Category{
		ID:          uuid.New(),
		Label:       domain.CollapseSpaces(input.Label),
		Description: sanitize.Text(input.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("category.Create: %w", conflictOnDuplicate(err))
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("category_id", c.ID.String()),
		slog.String("label", c.Label),
	)
	return c, nil
}

// Update rewrites label and description.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input Input) (*domain.Category, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.categories.Update(ctx, id, domain.CollapseSpaces(input.Label), sanitize.Text(input.Description))
	if err != nil {
		return nil, fmt.Errorf("category.Update: %w", conflictOnDuplicate(err))
	}

	s.log.InfoContext(ctx, "category updated", slog.String("category_id", id.String()))
	return c, nil
}

// Delete removes a category. Its terms become uncategorized.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("category.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "category deleted", slog.String("category_id", id.String()))
	return nil
}

func requireAdmin(ctx context.Context) error {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	return policy.RequireAdmin(actor)
}

func conflictOnDuplicate(err error) error {
	if errors.Is(err, domain.ErrAlreadyExists) {
		return fmt.Errorf("label already used: %w", domain.ErrConflict)
	}
	return err
}
