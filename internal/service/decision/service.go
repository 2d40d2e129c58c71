// Package decision records moderation verdicts on terms. Each verdict
// rewrites the term status in the same transaction.
package decision

import (
	"context"
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

type decisionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Decision, error)
	List(ctx context.Context, termID *uuid.UUID, limit, offset int) ([]domain.Decision, error)
	Create(ctx context.Context, d *domain.Decision) (*domain.Decision, error)
	Update(ctx context.Context, id uuid.UUID, typ domain.DecisionType, comment string) (*domain.Decision, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type termRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Term, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TermStatus) error
}

type notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides decision operations.
type Service struct {
	log       *slog.Logger
	decisions decisionRepo
	terms     termRepo
	notify    notifier
	tx        txManager
}

// NewService creates a new decision service.
func NewService(
	logger *slog.Logger,
	decisions decisionRepo,
	terms termRepo,
	notify notifier,
	tx txManager,
) *Service {
	return &Service{
		log:       logger.With("service", "decision"),
		decisions: decisions,
		terms:     terms,
		notify:    notify,
		tx:        tx,
	}
}

// CreateInput holds the parameters for recording a decision.
type CreateInput struct {
	TermID  uuid.UUID
	Type    string
	Comment string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.TermID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "termId", Message: "required"})
	}
	if _, ok := parseType(i.Type); !ok {
		errs = append(errs, domain.FieldError{Field: "decisionType", Message: "unknown decision type"})
	}
	if utf8.RuneCountInString(i.Comment) > 2000 {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds a partial decision update. Nil means unchanged.
type UpdateInput struct {
	Type    *string
	Comment *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Type == nil && i.Comment == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Type != nil {
		if _, ok := parseType(*i.Type); !ok {
			errs = append(errs, domain.FieldError{Field: "decisionType", Message: "unknown decision type"})
		}
	}
	if i.Comment != nil && utf8.RuneCountInString(*i.Comment) > 2000 {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func parseType(raw string) (domain.DecisionType, bool) {
	t := domain.DecisionType(strings.ToLower(strings.TrimSpace(raw)))
	return t, t.IsValid()
}

// List returns decisions, optionally for one term, newest first.
func (s *Service) List(ctx context.Context, termID *uuid.UUID, limit, offset int) ([]domain.Decision, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	out, err := s.decisions.List(ctx, termID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("decision.List: %w", err)
	}
	return out, nil
}

// Get returns one decision.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Decision, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	d, err := s.decisions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("decision.Get: %w", err)
	}
	return d, nil
}

// Create records a decision and moves the term to the matching status.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Decision, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := policy.CanRecordDecision(actor); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	typ, _ := parseType(input.Type)

	var (
		created *domain.Decision
		term    *domain.Term
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		term, err = s.terms.GetByID(txCtx, input.TermID)
		if err != nil {
			return fmt.Errorf("get term: %w", err)
		}

		now := time.Now().UTC()
		created, err = s.decisions.Create(txCtx, &domain.Decision{
			ID:        uuid.New(),
			TermID:    input.TermID,
			UserID:    actor.ID,
			Type:      typ,
			Comment:   sanitize.Text(input.Comment),
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create decision: %w", err)
		}

		if err := s.terms.UpdateStatus(txCtx, input.TermID, typ.TermStatus()); err != nil {
			return fmt.Errorf("update term status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("decision.Create: %w", err)
	}

	s.log.InfoContext(ctx, "decision recorded",
		slog.String("user_id", actor.ID.String()),
		slog.String("term_id", input.TermID.String()),
		slog.String("decision", string(typ)),
		slog.String("term_status", string(typ.TermStatus())),
	)

	s.notifyOwner(ctx, actor, term, typ)

	return created, nil
}

// Update changes a decision. A new type rewrites the term status in the same
// transaction.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Decision, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	current, err := s.decisions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("decision.Update: %w", err)
	}
	if err := policy.CanUpdateDecision(actor, current.UserID); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	typ := current.Type
	if input.Type != nil {
		typ, _ = parseType(*input.Type)
	}
	comment := current.Comment
	if input.Comment != nil {
		comment = sanitize.Text(*input.Comment)
	}
	typeChanged := typ != current.Type

	var (
		updated *domain.Decision
		term    *domain.Term
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.decisions.Update(txCtx, id, typ, comment)
		if err != nil {
			return fmt.Errorf("update decision: %w", err)
		}
		if !typeChanged {
			return nil
		}

		term, err = s.terms.GetByID(txCtx, current.TermID)
		if err != nil {
			return fmt.Errorf("get term: %w", err)
		}
		if err := s.terms.UpdateStatus(txCtx, current.TermID, typ.TermStatus()); err != nil {
			return fmt.Errorf("update term status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("decision.Update: %w", err)
	}

	s.log.InfoContext(ctx, "decision updated",
		slog.String("user_id", actor.ID.String()),
		slog.String("decision_id", id.String()),
		slog.String("decision", string(typ)),
	)

	if typeChanged {
		s.notifyOwner(ctx, actor, term, typ)
	}

	return updated, nil
}

// Delete removes a decision (admin only). The term keeps its status.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := policy.CanDeleteDecision(actor); err != nil {
		return err
	}

	if err := s.decisions.Delete(ctx, id); err != nil {
		return fmt.Errorf("decision.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "decision deleted",
		slog.String("user_id", actor.ID.String()),
		slog.String("decision_id", id.String()),
	)
	return nil
}

func (s *Service) notifyOwner(ctx context.Context, actor domain.Actor, term *domain.Term, typ domain.DecisionType) {
	if term == nil {
		return
	}
	s.notify.Notify(ctx, domain.Notification{
		UserID:  term.AuthorID,
		ActorID: &actor.ID,
		Type:    domain.NotificationDecision,
		TermID:  &term.ID,
		Message: fmt.Sprintf("A decision (%s) was recorded on %q.", typ, term.Title),
	})
}
