package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
)

const (
	maxBodyBytes = 1 << 20
	maxPageSize  = 100
)

// decodeJSON reads a JSON request body into dst. Unknown fields are ignored.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("body", "request body is empty")
		}
		return domain.NewValidationError("body", "invalid JSON body")
	}
	return nil
}

// pathID parses a UUID path parameter.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "invalid id")
	}
	return id, nil
}

// queryID parses an optional UUID query parameter.
func queryID(r *http.Request, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domain.NewValidationError(name, "invalid id")
	}
	return &id, nil
}

// queryBool treats "true", "1" and "yes" as true.
func queryBool(r *http.Request, name string) bool {
	switch strings.ToLower(r.URL.Query().Get(name)) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// page reads limit and offset. A zero limit lets the repository apply its
// default; larger limits are capped.
func page(r *http.Request) (limit, offset int, err error) {
	var errs []domain.FieldError
	q := r.URL.Query()

	if v := q.Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 0 {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be a non-negative integer"})
		}
	}
	if v := q.Get("offset"); v != "" {
		offset, err = strconv.Atoi(v)
		if err != nil || offset < 0 {
			errs = append(errs, domain.FieldError{Field: "offset", Message: "must be a non-negative integer"})
		}
	}
	if len(errs) > 0 {
		return 0, 0, domain.NewValidationErrors(errs)
	}

	if limit > maxPageSize {
		limit = maxPageSize
	}
	return limit, offset, nil
}

// optionalID distinguishes an absent JSON field from an explicit null.
type optionalID struct {
	Set   bool
	Value *uuid.UUID
}

func (o *optionalID) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var id uuid.UUID
	if err := json.Unmarshal(b, &id); err != nil {
		return err
	}
	o.Value = &id
	return nil
}
