package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	if c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit: limits must be > 0 (got %d, %d)",
			c.RateLimit.RequestsPerMinute, c.RateLimit.AuthPerMinute)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (a *AuthConfig) validate() error {
	if a.PasswordHashCost < bcrypt.MinCost || a.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, a.PasswordHashCost)
	}
	if a.PasswordMinLength < 6 {
		return fmt.Errorf("password_min_length must be >= 6 (got %d)", a.PasswordMinLength)
	}
	if a.AccessTokenTTL <= 0 {
		return fmt.Errorf("access_token_ttl must be > 0 (got %v)", a.AccessTokenTTL)
	}

	roles := a.RegistrationRoles()
	if len(roles) == 0 {
		return fmt.Errorf("registration_roles must name at least one role (got %q)", a.RegistrationRolesRaw)
	}
	for _, r := range roles {
		if r == domain.UserRoleAdmin {
			return fmt.Errorf("registration_roles must not include admin")
		}
	}

	return nil
}
