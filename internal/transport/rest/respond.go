package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"github.com/heartmarshall/lexicon-backend/pkg/ctxutil"
)

// Error codes sent in the "error" field of failed responses. Authorization
// failures use the deny reason instead.
const (
	codeValidation    = "validation_error"
	codeUnauthorized  = "unauthorized"
	codeForbidden     = "forbidden"
	codeNotFound      = "not_found"
	codeAlreadyExists = "already_exists"
	codeConflict      = "conflict"
	codeInternal      = "internal"
)

type successEnvelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type errorEnvelope struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Error   string              `json:"error"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, successEnvelope{Status: "success", Data: data})
}

func writeMessage(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, successEnvelope{Status: "success", Data: data, Message: message})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorEnvelope{Status: "error", Message: message, Error: code})
}

// respondError maps a service error onto the error envelope. Anything that
// is not a domain error is logged and hidden behind a generic 500.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		valErr  *domain.ValidationError
		authErr *domain.AuthorizationError
	)

	switch {
	case errors.As(err, &valErr):
		writeJSON(w, http.StatusBadRequest, errorEnvelope{
			Status:  "error",
			Message: valErr.Error(),
			Error:   codeValidation,
			Fields:  valErr.Errors,
		})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, codeValidation, "invalid input")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "authentication required")
	case errors.As(err, &authErr):
		writeError(w, http.StatusForbidden, authErr.Reason.String(), authErr.Message)
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, codeForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "resource not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, codeAlreadyExists, "resource already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, codeConflict, "the resource changed state, reload and retry")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}
