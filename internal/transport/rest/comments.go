package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
)

type commentService interface {
	List(ctx context.Context, termID uuid.UUID, limit, offset int) ([]domain.Comment, error)
	Create(ctx context.Context, termID uuid.UUID, content string) (*domain.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CommentHandler serves term comments.
type CommentHandler struct {
	svc commentService
	log *slog.Logger
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(svc commentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, log: logger.With("handler", "comment")}
}

type createCommentRequest struct {
	Content string `json:"content"`
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	termID, err := pathID(r, "termID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	limit, offset, err := page(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	comments, err := h.svc.List(r.Context(), termID, limit, offset)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, mapSlice(comments, toCommentResponse))
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	termID, err := pathID(r, "termID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req createCommentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	c, err := h.svc.Create(r.Context(), termID, req.Content)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusCreated, "comment added", toCommentResponse(c))
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusOK, "comment deleted", nil)
}
