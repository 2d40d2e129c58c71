package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"github.com/heartmarshall/lexicon-backend/internal/service/report"
)

type reportService interface {
	Create(ctx context.Context, input report.CreateInput) (*domain.Report, error)
	List(ctx context.Context, input report.ListInput) ([]domain.Report, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, rawStatus string) (*domain.Report, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReportHandler serves content reports.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

type createReportRequest struct {
	TermID  uuid.UUID `json:"termId"`
	Reason  string    `json:"reason"`
	Details string    `json:"details"`
}

type reportStatusRequest struct {
	Status string `json:"status"`
}

// List returns every report to admins and the caller's own reports to
// everybody else.
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	reports, err := h.svc.List(r.Context(), report.ListInput{
		Status: r.URL.Query().Get("status"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, mapSlice(reports, toReportResponse))
}

func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	rep, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toReportResponse(rep))
}

func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	rep, err := h.svc.Create(r.Context(), report.CreateInput{
		TermID:  req.TermID,
		Reason:  req.Reason,
		Details: req.Details,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusCreated, "report submitted", toReportResponse(rep))
}

func (h *ReportHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req reportStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	rep, err := h.svc.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusOK, "report updated", toReportResponse(rep))
}

func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusOK, "report deleted", nil)
}
