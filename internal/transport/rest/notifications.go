package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/service/notification"
)

type notificationService interface {
	List(ctx context.Context, input notification.ListInput) (*notification.ListResult, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) (int, error)
}

// NotificationHandler serves the caller's inbox.
type NotificationHandler struct {
	svc notificationService
	log *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notification")}
}

type notificationListResponse struct {
	Items  []notificationResponse `json:"items"`
	Unread int                    `json:"unread"`
}

type markAllReadResponse struct {
	Updated int `json:"updated"`
}

// List handles GET /api/notifications.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	res, err := h.svc.List(r.Context(), notification.ListInput{
		UnreadOnly: queryBool(r, "unread"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, notificationListResponse{
		Items:  mapSlice(res.Items, toNotificationResponse),
		Unread: res.Unread,
	})
}

// MarkRead handles PUT /api/notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.MarkRead(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusOK, "notification marked as read", nil)
}

// MarkAllRead handles PUT /api/notifications/read-all.
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.MarkAllRead(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusOK, "notifications marked as read", markAllReadResponse{Updated: n})
}
