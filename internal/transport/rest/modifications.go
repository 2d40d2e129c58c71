package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"github.com/heartmarshall/lexicon-backend/internal/service/modification"
)

type modificationService interface {
	List(ctx context.Context, input modification.ListInput) ([]domain.Modification, error)
	PendingValidation(ctx context.Context, scope string, limit, offset int) ([]domain.Modification, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Modification, error)
	Propose(ctx context.Context, input modification.ProposeInput) (*domain.Modification, error)
	Resolve(ctx context.Context, id uuid.UUID, input modification.ResolveInput) (*domain.Modification, error)
	Amend(ctx context.Context, id uuid.UUID, input modification.AmendInput) (*domain.Modification, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ModificationHandler serves proposed term modifications.
type ModificationHandler struct {
	svc modificationService
	log *slog.Logger
}

// NewModificationHandler creates a ModificationHandler.
func NewModificationHandler(svc modificationService, logger *slog.Logger) *ModificationHandler {
	return &ModificationHandler{svc: svc, log: logger.With("handler", "modification")}
}

type proposeRequest struct {
	TermID  uuid.UUID       `json:"termId"`
	Changes json.RawMessage `json:"changes"`
	Comment string          `json:"comment"`
}

// updateModificationRequest carries either a resolution (status present)
// or an amendment by the proposer.
type updateModificationRequest struct {
	Status       *string         `json:"status"`
	AdminComment string          `json:"adminComment"`
	Comment      *string         `json:"comment"`
	Changes      json.RawMessage `json:"changes"`
}

func (h *ModificationHandler) List(w http.ResponseWriter, r *http.Request) {
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

	mods, err := h.svc.List(r.Context(), modification.ListInput{
		TermID: termID,
		Status: r.URL.Query().Get("status"),
		Mine:   queryBool(r, "mine"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, mapSlice(mods, toModificationResponse))
}

// PendingValidation lists pending proposals the caller may resolve.
func (h *ModificationHandler) PendingValidation(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	mods, err := h.svc.PendingValidation(r.Context(), r.URL.Query().Get("scope"), limit, offset)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, mapSlice(mods, toModificationResponse))
}

func (h *ModificationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	m, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toModificationResponse(m))
}

func (h *ModificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req proposeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	m, err := h.svc.Propose(r.Context(), modification.ProposeInput{
		TermID:  req.TermID,
		Changes: req.Changes,
		Comment: req.Comment,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusCreated, "modification proposed", toModificationResponse(m))
}

// Update resolves the proposal when the body names a status and amends it
// otherwise.
func (h *ModificationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req updateModificationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var (
		m   *domain.Modification
		msg string
	)
	if req.Status != nil {
		m, err = h.svc.Resolve(r.Context(), id, modification.ResolveInput{
			Status:       *req.Status,
			AdminComment: req.AdminComment,
		})
		msg = "modification resolved"
	} else {
		m, err = h.svc.Amend(r.Context(), id, modification.AmendInput{
			Comment: req.Comment,
			Changes: req.Changes,
		})
		msg = "modification updated"
	}
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusOK, msg, toModificationResponse(m))
}

func (h *ModificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusOK, "modification deleted", nil)
}
