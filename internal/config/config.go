package config

import (
	"slices"
	"strings"
	"time"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Redis     RedisConfig     `yaml:"redis"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret         string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer         string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"lexicon"`
	AccessTokenTTL    time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"24h"`
	PasswordHashCost  int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`
	PasswordMinLength int           `yaml:"password_min_length" env:"AUTH_PASSWORD_MIN_LENGTH" env-default:"8"`
	// RegistrationRolesRaw lists the roles open to self-registration.
	RegistrationRolesRaw string `yaml:"registration_roles" env:"AUTH_REGISTRATION_ROLES" env-default:"researcher,author"`
}

// RegistrationRoles returns the normalized roles accepted at registration.
// Unknown entries are skipped.
func (c AuthConfig) RegistrationRoles() []domain.UserRole {
	var roles []domain.UserRole
	for _, raw := range strings.Split(c.RegistrationRolesRaw, ",") {
		role, ok := domain.NormalizeRole(raw)
		if !ok || slices.Contains(roles, role) {
			continue
		}
		roles = append(roles, role)
	}
	return roles
}

// IsRegistrationRole checks whether role may be chosen at registration.
func (c AuthConfig) IsRegistrationRole(role domain.UserRole) bool {
	return slices.Contains(c.RegistrationRoles(), role)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"             env-default:"300"`
	AuthPerMinute     int           `yaml:"auth_per_minute"     env:"RATE_LIMIT_AUTH_RPM"        env-default:"20"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// RedisConfig holds the notification fan-out connection. An empty Addr
// disables publishing.
type RedisConfig struct {
	Addr          string `yaml:"addr"           env:"REDIS_ADDR"`
	Password      string `yaml:"password"       env:"REDIS_PASSWORD"`
	DB            int    `yaml:"db"             env:"REDIS_DB"             env-default:"0"`
	ChannelPrefix string `yaml:"channel_prefix" env:"REDIS_CHANNEL_PREFIX" env-default:"lexicon:notifications:"`
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}
