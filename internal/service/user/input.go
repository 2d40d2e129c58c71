package user

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
)

var validate = validator.New()

// UpdateProfileInput holds the self-editable profile fields. Nil means
// unchanged.
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Bio       *string
	Phone     *string
	Website   *string
	Socials   map[string]string
}

// Validate checks all fields and collects all errors.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.FirstName == nil && i.LastName == nil && i.Bio == nil &&
		i.Phone == nil && i.Website == nil && i.Socials == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}

	checkName := func(field string, v *string) {
		if v == nil {
			return
		}
		name := strings.TrimSpace(*v)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: field, Message: "required"})
		} else if utf8.RuneCountInString(name) > 100 {
			errs = append(errs, domain.FieldError{Field: field, Message: "max 100 characters"})
		}
	}
	checkName("firstName", i.FirstName)
	checkName("lastName", i.LastName)

	if i.Bio != nil && utf8.RuneCountInString(*i.Bio) > 2000 {
		errs = append(errs, domain.FieldError{Field: "bio", Message: "max 2000 characters"})
	}
	if i.Phone != nil && len(*i.Phone) > 32 {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "max 32 characters"})
	}
	if i.Website != nil && *i.Website != "" && validate.Var(*i.Website, "url") != nil {
		errs = append(errs, domain.FieldError{Field: "website", Message: "invalid url"})
	}
	for k, v := range i.Socials {
		if k == "" || len(k) > 32 || len(v) > 255 {
			errs = append(errs, domain.FieldError{Field: "socials", Message: "invalid entry"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput filters the admin user listing. Empty strings mean no filter.
type ListInput struct {
	Role   string
	Status string
	Limit  int
	Offset int
}

// toFilter validates and normalizes the filter values.
func (i ListInput) toFilter() (domain.UserFilter, error) {
	f := domain.UserFilter{Limit: i.Limit, Offset: i.Offset}
	var errs []domain.FieldError

	if i.Role != "" {
		role, ok := domain.NormalizeRole(i.Role)
		if !ok {
			errs = append(errs, domain.FieldError{Field: "role", Message: "unknown role"})
		}
		f.Role = &role
	}
	if i.Status != "" {
		status, ok := domain.NormalizeStatus(i.Status)
		if !ok {
			errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
		}
		f.Status = &status
	}

	if len(errs) > 0 {
		return f, &domain.ValidationError{Errors: errs}
	}
	return f, nil
}
