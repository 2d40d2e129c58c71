package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"github.com/heartmarshall/lexicon-backend/internal/service/decision"
)

type decisionService interface {
	List(ctx context.Context, termID *uuid.UUID, limit, offset int) ([]domain.Decision, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Decision, error)
	Create(ctx context.Context, input decision.CreateInput) (*domain.Decision, error)
	Update(ctx context.Context, id uuid.UUID, input decision.UpdateInput) (*domain.Decision, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DecisionHandler serves validation decisions.
type DecisionHandler struct {
	svc decisionService
	log *slog.Logger
}

// NewDecisionHandler creates a DecisionHandler.
func NewDecisionHandler(svc decisionService, logger *slog.Logger) *DecisionHandler {
	return &DecisionHandler{svc: svc, log: logger.With("handler", "decision")}
}

type createDecisionRequest struct {
	TermID       uuid.UUID `json:"termId"`
	DecisionType string    `json:"decisionType"`
	Comment      string    `json:"comment"`
}

type updateDecisionRequest struct {
	DecisionType *string `json:"decisionType"`
	Comment      *string `json:"comment"`
}

func (h *DecisionHandler) List(w http.ResponseWriter, r *http.Request) {
	termID, err := queryID(r, "termId")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	limit, offset, err := page(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	decisions, err := h.svc.List(r.Context(), termID, limit, offset)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, mapSlice(decisions, toDecisionResponse))
}

func (h *DecisionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	d, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toDecisionResponse(d))
}

// Create records a decision and moves the term to the matching status.
func (h *DecisionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDecisionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	d, err := h.svc.Create(r.Context(), decision.CreateInput{
		TermID:  req.TermID,
		Type:    req.DecisionType,
		Comment: req.Comment,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusCreated, "decision recorded", toDecisionResponse(d))
}

func (h *DecisionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req updateDecisionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	d, err := h.svc.Update(r.Context(), id, decision.UpdateInput{
		Type:    req.DecisionType,
		Comment: req.Comment,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusOK, "decision updated", toDecisionResponse(d))
}

func (h *DecisionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusOK, "decision deleted", nil)
}
