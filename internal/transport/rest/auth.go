package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"github.com/heartmarshall/lexicon-backend/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	Me(ctx context.Context) (*domain.User, error)
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email     string            `json:"email"`
	Password  string            `json:"password"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Role      string            `json:"role"`
	Bio       string            `json:"bio"`
	Phone     string            `json:"phone"`
	Website   string            `json:"website"`
	Socials   map[string]string `json:"socials"`
}

type authResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      userResponse `json:"user"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toAuthResponse(result))
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		Bio:       req.Bio,
		Phone:     req.Phone,
		Website:   req.Website,
		Socials:   req.Socials,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	msg := "account created"
	if result.User.Status == domain.UserStatusPending {
		msg = "account created, awaiting administrator approval"
	}
	writeMessage(w, http.StatusCreated, msg, toAuthResponse(result))
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.Me(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toUserResponse(user))
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	return authResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      toUserResponse(result.User),
	}
}
