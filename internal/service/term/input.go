package term

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
)

const (
	maxTitle    = 200
	maxFreeText = 10000
)

// CreateInput holds the parameters for creating a term.
type CreateInput struct {
	Title      string
	Definition string
	CategoryID *uuid.UUID
	Status     string // empty means published
	Examples   string
	Sources    string
	Remarks    string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = checkTitle(errs, i.Title)
	errs = checkDefinition(errs, i.Definition)
	if i.Status != "" {
		if _, ok := domain.NormalizeTermStatus(i.Status); !ok {
			errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
		}
	}
	errs = checkFreeText(errs, "examples", i.Examples)
	errs = checkFreeText(errs, "sources", i.Sources)
	errs = checkFreeText(errs, "remarks", i.Remarks)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds a partial term update. Nil means unchanged.
type UpdateInput struct {
	Title         *string
	Definition    *string
	CategoryID    *uuid.UUID
	ClearCategory bool
	Status        *string
	Examples      *string
	Sources       *string
	Remarks       *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == nil && i.Definition == nil && i.CategoryID == nil && !i.ClearCategory &&
		i.Status == nil && i.Examples == nil && i.Sources == nil && i.Remarks == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = checkTitle(errs, *i.Title)
	}
	if i.Definition != nil {
		errs = checkDefinition(errs, *i.Definition)
	}
	if i.Status != nil {
		if _, ok := domain.NormalizeTermStatus(*i.Status); !ok {
			errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
		}
	}
	if i.Examples != nil {
		errs = checkFreeText(errs, "examples", *i.Examples)
	}
	if i.Sources != nil {
		errs = checkFreeText(errs, "sources", *i.Sources)
	}
	if i.Remarks != nil {
		errs = checkFreeText(errs, "remarks", *i.Remarks)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds search, filter and paging parameters.
type ListInput struct {
	Search     string
	CategoryID *uuid.UUID
	Status     string
	AuthorID   *uuid.UUID
	SortBy     string
	SortOrder  string
	Limit      int
	Offset     int
}

func checkTitle(errs []domain.FieldError, title string) []domain.FieldError {
	t := strings.TrimSpace(title)
	if t == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(t) > maxTitle {
		return append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	return errs
}

func checkDefinition(errs []domain.FieldError, def string) []domain.FieldError {
	if strings.TrimSpace(def) == "" {
		return append(errs, domain.FieldError{Field: "definition", Message: "required"})
	}
	return checkFreeText(errs, "definition", def)
}

func checkFreeText(errs []domain.FieldError, field, v string) []domain.FieldError {
	if utf8.RuneCountInString(v) > maxFreeText {
		return append(errs, domain.FieldError{Field: field, Message: "max 10000 characters"})
	}
	return errs
}
