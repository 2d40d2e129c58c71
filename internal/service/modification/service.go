// Package modification implements the proposed-modification workflow:
// contributors propose changes to a term, and the term owner or an admin
// resolves them. Resolving never rewrites the term itself.
package modification

import (
	"context"
	"encoding/json"
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

const maxCommentLength = 2000

type modificationRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Modification, error)
	List(ctx context.Context, f domain.ModificationFilter) ([]domain.Modification, error)
	Create(ctx context.Context, m *domain.Modification) (*domain.Modification, error)
	Resolve(ctx context.Context, id uuid.UUID, res domain.Resolution) (*domain.Modification, error)
	Amend(ctx context.Context, id uuid.UUID, comment *string, changes json.RawMessage) (*domain.Modification, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type termRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Term, error)
}

type notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// Service provides modification operations.
type Service struct {
	log           *slog.Logger
	modifications modificationRepo
	terms         termRepo
	notify        notifier
}

// NewService creates a new modification service.
func NewService(
	logger *slog.Logger,
	modifications modificationRepo,
	terms termRepo,
	notify notifier,
) *Service {
	return &Service{
		log:           logger.With("service", "modification"),
		modifications: modifications,
		terms:         terms,
		notify:        notify,
	}
}

// ---------------------------------------------------------------------------
// Inputs
// ---------------------------------------------------------------------------

// ProposeInput holds the parameters for a new proposal.
type ProposeInput struct {
	TermID  uuid.UUID
	Changes json.RawMessage
	Comment string
}

// Validate checks all fields and collects all errors.
func (i ProposeInput) Validate() error {
	var errs []domain.FieldError

	if i.TermID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "termId", Message: "required"})
	}
	if len(i.Changes) == 0 {
		errs = append(errs, domain.FieldError{Field: "changes", Message: "required"})
	} else if !isJSONObject(i.Changes) {
		errs = append(errs, domain.FieldError{Field: "changes", Message: "must be a JSON object"})
	}
	if utf8.RuneCountInString(i.Comment) > maxCommentLength {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ResolveInput holds the outcome chosen by a reviewer.
type ResolveInput struct {
	Status       string
	AdminComment string
}

// Validate checks all fields and collects all errors.
func (i ResolveInput) Validate() error {
	var errs []domain.FieldError

	if !domain.ModificationStatus(strings.ToLower(strings.TrimSpace(i.Status))).IsResolution() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be approved, rejected or implemented"})
	}
	if utf8.RuneCountInString(i.AdminComment) > maxCommentLength {
		errs = append(errs, domain.FieldError{Field: "adminComment", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AmendInput holds a partial rewrite of a pending proposal. Nil means
// unchanged.
type AmendInput struct {
	Comment *string
	Changes json.RawMessage
}

// Validate checks all fields and collects all errors.
func (i AmendInput) Validate() error {
	var errs []domain.FieldError

	if i.Comment == nil && i.Changes == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Changes != nil && !isJSONObject(i.Changes) {
		errs = append(errs, domain.FieldError{Field: "changes", Message: "must be a JSON object"})
	}
	if i.Comment != nil && utf8.RuneCountInString(*i.Comment) > maxCommentLength {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput narrows a modification listing. Mine restricts to the caller's
// own proposals.
type ListInput struct {
	TermID *uuid.UUID
	Status string
	Mine   bool
	Limit  int
	Offset int
}

func isJSONObject(raw json.RawMessage) bool {
	var obj map[string]json.RawMessage
	return json.Unmarshal(raw, &obj) == nil && obj != nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// Get returns one modification.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Modification, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	m, err := s.modifications.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("modification.Get: %w", err)
	}
	return m, nil
}

// List returns modifications filtered by term, status and proposer.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Modification, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	f := domain.ModificationFilter{
		TermID: input.TermID,
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	if input.Status != "" {
		st := domain.ModificationStatus(strings.ToLower(strings.TrimSpace(input.Status)))
		if !st.IsValid() {
			return nil, domain.NewValidationError("status", "unknown modification status")
		}
		f.Status = &st
	}
	if input.Mine {
		f.ProposerID = &actor.ID
	}

	out, err := s.modifications.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("modification.List: %w", err)
	}
	return out, nil
}

// PendingValidation returns the pending proposals the caller may resolve:
// those on terms the caller owns, never the caller's own. Admins see every
// pending proposal unless scope is "mine".
func (s *Service) PendingValidation(ctx context.Context, scope string, limit, offset int) ([]domain.Modification, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	pending := domain.ModificationPending
	f := domain.ModificationFilter{
		Status:            &pending,
		ExcludeProposerID: &actor.ID,
		Limit:             limit,
		Offset:            offset,
	}
	if !actor.IsAdmin() || strings.EqualFold(scope, "mine") {
		f.TermAuthorID = &actor.ID
	}

	out, err := s.modifications.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("modification.PendingValidation: %w", err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Propose records a pending modification and notifies the term owner.
func (s *Service) Propose(ctx context.Context, input ProposeInput) (*domain.Modification, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := policy.CanProposeModification(actor); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	term, err := s.terms.GetByID(ctx, input.TermID)
	if err != nil {
		return nil, fmt.Errorf("modification.Propose: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.modifications.Create(ctx, &domain.Modification{
		ID:         uuid.New(),
		TermID:     term.ID,
		ProposerID: actor.ID,
		Changes:    input.Changes,
		Comment:    sanitize.Text(input.Comment),
		Status:     domain.ModificationPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("modification.Propose: %w", err)
	}

	s.log.InfoContext(ctx, "modification proposed",
		slog.String("user_id", actor.ID.String()),
		slog.String("term_id", term.ID.String()),
		slog.String("modification_id", created.ID.String()),
	)

	s.notify.Notify(ctx, domain.Notification{
		UserID:  term.AuthorID,
		ActorID: &actor.ID,
		Type:    domain.NotificationModificationProposed,
		TermID:  &term.ID,
		Message: fmt.Sprintf("A modification was proposed on %q.", term.Title),
	})

	return created, nil
}

// Resolve approves, rejects or marks a pending modification implemented.
// A proposal resolved concurrently by someone else yields ErrConflict.
func (s *Service) Resolve(ctx context.Context, id uuid.UUID, input ResolveInput) (*domain.Modification, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	current, err := s.modifications.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("modification.Resolve: %w", err)
	}
	if err := policy.CanResolveModification(actor, current.ProposerID, current.TermAuthorID); err != nil {
		return nil, err
	}
	if !current.IsPending() {
		return nil, fmt.Errorf("modification.Resolve: already %s: %w", current.Status, domain.ErrConflict)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := domain.ModificationStatus(strings.ToLower(strings.TrimSpace(input.Status)))
	resolved, err := s.modifications.Resolve(ctx, id, domain.Resolution{
		Status:       status,
		AdminComment: sanitize.Text(input.AdminComment),
		ReviewerID:   actor.ID,
		ReviewedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("modification.Resolve: %w", err)
	}

	s.log.InfoContext(ctx, "modification resolved",
		slog.String("user_id", actor.ID.String()),
		slog.String("modification_id", id.String()),
		slog.String("status", string(status)),
	)

	s.notify.Notify(ctx, domain.Notification{
		UserID:  current.ProposerID,
		ActorID: &actor.ID,
		Type:    domain.NotificationModificationResolved,
		TermID:  &current.TermID,
		Message: fmt.Sprintf("Your modification on %q was %s.", current.TermTitle, status),
	})

	return resolved, nil
}

// Amend rewrites a pending proposal. Only the proposer may amend.
func (s *Service) Amend(ctx context.Context, id uuid.UUID, input AmendInput) (*domain.Modification, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	current, err := s.modifications.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("modification.Amend: %w", err)
	}
	if err := policy.CanAmendModification(actor, current.ProposerID); err != nil {
		return nil, err
	}
	if !current.IsPending() {
		return nil, fmt.Errorf("modification.Amend: already %s: %w", current.Status, domain.ErrConflict)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	amended, err := s.modifications.Amend(ctx, id, sanitize.TextPtr(input.Comment), input.Changes)
	if err != nil {
		return nil, fmt.Errorf("modification.Amend: %w", err)
	}

	s.log.InfoContext(ctx, "modification amended",
		slog.String("user_id", actor.ID.String()),
		slog.String("modification_id", id.String()),
	)

	return amended, nil
}

// Delete removes a modification. The proposer may only delete while the
// proposal is pending; admins may delete at any time.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	current, err := s.modifications.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("modification.Delete: %w", err)
	}
	if err := policy.CanDeleteModification(actor, current.ProposerID); err != nil {
		return err
	}
	if !actor.IsAdmin() && !current.IsPending() {
		return fmt.Errorf("modification.Delete: already %s: %w", current.Status, domain.ErrConflict)
	}

	if err := s.modifications.Delete(ctx, id); err != nil {
		return fmt.Errorf("modification.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "modification deleted",
		slog.String("user_id", actor.ID.String()),
		slog.String("modification_id", id.String()),
	)
	return nil
}
