package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"github.com/heartmarshall/lexicon-backend/pkg/ctxutil"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newRequest builds a request with an optional JSON body and chi URL params
// given as key/value pairs.
func newRequest(t *testing.T, method, target, body string, params ...string) *http.Request {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, r)

	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for i := 0; i+1 < len(params); i += 2 {
			rctx.URLParams.Add(params[i], params[i+1])
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}
	return req
}

func asActor(req *http.Request, id uuid.UUID, role domain.UserRole) *http.Request {
	actor := domain.Actor{ID: id, Role: role, Status: domain.UserStatusActive}
	return req.WithContext(ctxutil.WithActor(req.Context(), actor))
}

type envelope struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Error   string              `json:"error"`
	Data    json.RawMessage     `json:"data"`
	Fields  []domain.FieldError `json:"fields"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return env
}
