package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"github.com/heartmarshall/lexicon-backend/internal/service/category"
)

type categoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	Create(ctx context.Context, input category.Input) (*domain.Category, error)
	Update(ctx context.Context, id uuid.UUID, input category.Input) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryHandler serves category endpoints.
type CategoryHandler struct {
	svc categoryService
	log *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc categoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, log: logger.With("handler", "category")}
}

type categoryRequest struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, mapSlice(cats, toCategoryResponse))
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toCategoryResponse(c))
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	c, err := h.svc.Create(r.Context(), category.Input{Label: req.Label, Description: req.Description})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusCreated, "category created", toCategoryResponse(c))
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req categoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	c, err := h.svc.Update(r.Context(), id, category.Input{Label: req.Label, Description: req.Description})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusOK, "category updated", toCategoryResponse(c))
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusOK, "category deleted", nil)
}
