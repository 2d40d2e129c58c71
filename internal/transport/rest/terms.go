package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"github.com/heartmarshall/lexicon-backend/internal/service/term"
)

type termService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Term, error)
	List(ctx context.Context, input term.ListInput) ([]domain.Term, error)
	Create(ctx context.Context, input term.CreateInput) (*domain.Term, error)
	Update(ctx context.Context, id uuid.UUID, input term.UpdateInput) (*domain.Term, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TermHandler serves the term catalogue.
type TermHandler struct {
	svc termService
	log *slog.Logger
}

// NewTermHandler creates a TermHandler.
func NewTermHandler(svc termService, logger *slog.Logger) *TermHandler {
	return &TermHandler{svc: svc, log: logger.With("handler", "term")}
}

type createTermRequest struct {
	Title      string     `json:"title"`
	Definition string     `json:"definition"`
	CategoryID *uuid.UUID `json:"categoryId"`
	Status     string     `json:"status"`
	Examples   string     `json:"examples"`
	Sources    string     `json:"sources"`
	Remarks    string     `json:"remarks"`
}

type updateTermRequest struct {
	Title      *string    `json:"title"`
	Definition *string    `json:"definition"`
	CategoryID optionalID `json:"categoryId"`
	Status     *string    `json:"status"`
	Examples   *string    `json:"examples"`
	Sources    *string    `json:"sources"`
	Remarks    *string    `json:"remarks"`
}

// List handles GET /api/terms.
func (h *TermHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	categoryID, err := queryID(r, "category")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	authorID, err := queryID(r, "authorId")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	q := r.URL.Query()
	terms, err := h.svc.List(r.Context(), term.ListInput{
		Search:     q.Get("search"),
		CategoryID: categoryID,
		Status:     q.Get("status"),
		AuthorID:   authorID,
		SortBy:     q.Get("sortBy"),
		SortOrder:  q.Get("sortOrder"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, mapSlice(terms, toTermResponse))
}

// Get handles GET /api/terms/{id}.
func (h *TermHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toTermResponse(t))
}

// Create handles POST /api/terms.
func (h *TermHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTermRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	t, err := h.svc.Create(r.Context(), term.CreateInput{
		Title:      req.Title,
		Definition: req.Definition,
		CategoryID: req.CategoryID,
		Status:     req.Status,
		Examples:   req.Examples,
		Sources:    req.Sources,
		Remarks:    req.Remarks,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusCreated, "term created", toTermResponse(t))
}

// Update handles PUT /api/terms/{id}. "categoryId": null detaches the
// category, an absent field leaves it unchanged.
func (h *TermHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req updateTermRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	t, err := h.svc.Update(r.Context(), id, term.UpdateInput{
		Title:         req.Title,
		Definition:    req.Definition,
		CategoryID:    req.CategoryID.Value,
		ClearCategory: req.CategoryID.Set && req.CategoryID.Value == nil,
		Status:        req.Status,
		Examples:      req.Examples,
		Sources:       req.Sources,
		Remarks:       req.Remarks,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusOK, "term updated", toTermResponse(t))
}

// Delete handles DELETE /api/terms/{id}.
func (h *TermHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusOK, "term deleted", nil)
}
