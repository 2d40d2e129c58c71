package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"github.com/heartmarshall/lexicon-backend/internal/service/user"
	"github.com/heartmarshall/lexicon-backend/pkg/ctxutil"
)

type userService interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateMe(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	List(ctx context.Context, input user.ListInput) ([]domain.User, error)
	SetStatus(ctx context.Context, targetID uuid.UUID, rawStatus string) (*domain.User, error)
}

// UserHandler serves profile and account administration endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

// updateProfileRequest lists the only fields a user may change on their own
// account. Role and status in the body are ignored.
type updateProfileRequest struct {
	FirstName *string           `json:"firstName"`
	LastName  *string           `json:"lastName"`
	Bio       *string           `json:"bio"`
	Phone     *string           `json:"phone"`
	Website   *string           `json:"website"`
	Socials   map[string]string `json:"socials"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// List handles GET /api/users (admin).
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	users, err := h.svc.List(r.Context(), user.ListInput{
		Role:   r.URL.Query().Get("role"),
		Status: r.URL.Query().Get("status"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, mapSlice(users, toUserResponse))
}

// Get handles GET /api/users/{id}. The caller and admins see the full
// profile, everybody else the public part.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	u, err := h.svc.GetProfile(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if actor, ok := ctxutil.ActorFromCtx(r.Context()); ok && (actor.ID == u.ID || actor.IsAdmin()) {
		writeData(w, http.StatusOK, toUserResponse(u))
		return
	}
	writeData(w, http.StatusOK, toPublicProfile(u))
}

// UpdateMe handles PUT /api/users/me.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	u, err := h.svc.UpdateMe(r.Context(), user.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Phone:     req.Phone,
		Website:   req.Website,
		Socials:   req.Socials,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusOK, "profile updated", toUserResponse(u))
}

// SetStatus handles PUT /api/users/{id}/status (admin).
func (h *UserHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req setStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	u, err := h.svc.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusOK, "status updated", toUserResponse(u))
}
