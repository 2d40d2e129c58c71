package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
)

type likeService interface {
	Toggle(ctx context.Context, termID uuid.UUID) (domain.LikeStatus, error)
	Count(ctx context.Context, termID uuid.UUID) (int, error)
	Status(ctx context.Context, termID uuid.UUID) (domain.LikeStatus, error)
}

// LikeHandler serves per-term likes.
type LikeHandler struct {
	svc likeService
	log *slog.Logger
}

// NewLikeHandler creates a LikeHandler.
func NewLikeHandler(svc likeService, logger *slog.Logger) *LikeHandler {
	return &LikeHandler{svc: svc, log: logger.With("handler", "like")}
}

type likeCountResponse struct {
	Count int `json:"count"`
}

// Count handles GET /api/terms/{termID}/likes.
func (h *LikeHandler) Count(w http.ResponseWriter, r *http.Request) {
	termID, err := pathID(r, "termID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	n, err := h.svc.Count(r.Context(), termID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, likeCountResponse{Count: n})
}

// Toggle handles POST /api/terms/{termID}/likes[/toggle].
func (h *LikeHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	termID, err := pathID(r, "termID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	st, err := h.svc.Toggle(r.Context(), termID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, likeResponse{Liked: st.Liked, Count: st.Count})
}

// Status handles GET /api/terms/{termID}/likes/me.
func (h *LikeHandler) Status(w http.ResponseWriter, r *http.Request) {
	termID, err := pathID(r, "termID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	st, err := h.svc.Status(r.Context(), termID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, likeResponse{Liked: st.Liked, Count: st.Count})
}
