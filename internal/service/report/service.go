// Package report lets users flag terms for admin attention.
package report

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

type reportRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	List(ctx context.Context, f domain.ReportFilter) ([]domain.Report, error)
	Create(ctx context.Context, rep *domain.Report) (*domain.Report, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) (*domain.Report, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type termRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Term, error)
}

type notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// Service provides report operations.
type Service struct {
	log     *slog.Logger
	reports reportRepo
	terms   termRepo
	notify  notifier
}

// NewService creates a new report service.
func NewService(logger *slog.Logger, reports reportRepo, terms termRepo, notify notifier) *Service {
	return &Service{
		log:     logger.With("service", "report"),
		reports: reports,
		terms:   terms,
		notify:  notify,
	}
}

// CreateInput holds the parameters for a new report.
type CreateInput struct {
	TermID  uuid.UUID
	Reason  string
	Details string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.TermID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "termId", Message: "required"})
	}
	reason := strings.TrimSpace(i.Reason)
	if reason == "" {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "required"})
	} else if utf8.RuneCountInString(reason) > 200 {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 200 characters"})
	}
	if utf8.RuneCountInString(i.Details) > 2000 {
		errs = append(errs, domain.FieldError{Field: "details", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput narrows a report listing.
type ListInput struct {
	Status string
	Limit  int
	Offset int
}

func parseStatus(raw string) (domain.ReportStatus, bool) {
	st := domain.ReportStatus(strings.ToLower(strings.TrimSpace(raw)))
	return st, st.IsValid()
}

// Create files a report on a term and notifies its owner.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Report, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	term, err := s.terms.GetByID(ctx, input.TermID)
	if err != nil {
		return nil, fmt.Errorf("report.Create: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.reports.Create(ctx, &domain.Report{
		ID:         uuid.New(),
		TermID:     term.ID,
		ReporterID: actor.ID,
		Reason:     sanitize.Text(input.Reason),
		Details:    sanitize.Text(input.Details),
		Status:     domain.ReportOpen,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("report.Create: %w", err)
	}
	created.TermTitle = term.Title

	s.log.InfoContext(ctx, "report created",
		slog.String("user_id", actor.ID.String()),
		slog.String("term_id", term.ID.String()),
		slog.String("report_id", created.ID.String()),
	)

	if term.AuthorID != actor.ID {
		s.notify.Notify(ctx, domain.Notification{
			UserID:  term.AuthorID,
			ActorID: &actor.ID,
			Type:    domain.NotificationReport,
			TermID:  &term.ID,
			Message: fmt.Sprintf("%q was reported.", term.Title),
		})
	}

	return created, nil
}

// List returns every report for admins and the caller's own reports for
// everyone else.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Report, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	f := domain.ReportFilter{Limit: input.Limit, Offset: input.Offset}
	if input.Status != "" {
		st, ok := parseStatus(input.Status)
		if !ok {
			return nil, domain.NewValidationError("status", "unknown report status")
		}
		f.Status = &st
	}
	if !actor.IsAdmin() {
		f.ReporterID = &actor.ID
	}

	out, err := s.reports.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("report.List: %w", err)
	}
	return out, nil
}

// Get returns a report to an admin or to its reporter.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rep, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("report.Get: %w", err)
	}
	if err := policy.CanViewReport(actor, rep.ReporterID); err != nil {
		return nil, err
	}
	return rep, nil
}

// UpdateStatus moves a report to open, reviewed or dismissed (admin only).
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, rawStatus string) (*domain.Report, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := policy.RequireAdmin(actor); err != nil {
		return nil, err
	}
	st, ok := parseStatus(rawStatus)
	if !ok {
		return nil, domain.NewValidationError("status", "must be open, reviewed or dismissed")
	}

	rep, err := s.reports.UpdateStatus(ctx, id, st)
	if err != nil {
		return nil, fmt.Errorf("report.UpdateStatus: %w", err)
	}

	s.log.InfoContext(ctx, "report status updated",
		slog.String("user_id", actor.ID.String()),
		slog.String("report_id", id.String()),
		slog.String("status", string(st)),
	)
	return rep, nil
}

// Delete removes a report (admin only).
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := policy.RequireAdmin(actor); err != nil {
		return err
	}

	if err := s.reports.Delete(ctx, id); err != nil {
		return fmt.Errorf("report.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "report deleted",
		slog.String("user_id", actor.ID.String()),
		slog.String("report_id", id.String()),
	)
	return nil
}
