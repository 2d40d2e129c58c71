package auth

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/lexicon-backend/internal/config"
	"github.com/heartmarshall/lexicon-backend/internal/domain"
)

var validate = validator.New()

// RegisterInput holds the parameters for self-registration.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
	Bio       string
	Phone     string
	Website   string
	Socials   map[string]string
}

// Validate checks all fields against the auth configuration and collects all
// errors.
func (i RegisterInput) Validate(cfg config.AuthConfig) error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(i.Email) > 254 || validate.Var(i.Email, "email") != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email format"})
	}

	switch n := utf8.RuneCountInString(i.Password); {
	case n == 0:
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case n < cfg.PasswordMinLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	case len(i.Password) > 72:
		errs = append(errs, domain.FieldError{Field: "password", Message: "max 72 bytes"})
	}

	if strings.TrimSpace(i.FirstName) == "" {
		errs = append(errs, domain.FieldError{Field: "firstName", Message: "required"})
	} else if utf8.RuneCountInString(i.FirstName) > 100 {
		errs = append(errs, domain.FieldError{Field: "firstName", Message: "max 100 characters"})
	}
	if strings.TrimSpace(i.LastName) == "" {
		errs = append(errs, domain.FieldError{Field: "lastName", Message: "required"})
	} else if utf8.RuneCountInString(i.LastName) > 100 {
		errs = append(errs, domain.FieldError{Field: "lastName", Message: "max 100 characters"})
	}

	if role, ok := domain.NormalizeRole(i.Role); !ok || !cfg.IsRegistrationRole(role) {
		errs = append(errs, domain.FieldError{Field: "role", Message: "not open to registration"})
	}

	if i.Website != "" && validate.Var(i.Website, "url") != nil {
		errs = append(errs, domain.FieldError{Field: "website", Message: "invalid url"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds email + password credentials.
type LoginInput struct {
	Email    string
	Password string
}

// Validate checks that both credentials are present.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
