package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/lexicon-backend/internal/config"
	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"github.com/heartmarshall/lexicon-backend/internal/transport/middleware"
	"github.com/heartmarshall/lexicon-backend/internal/transport/rest"
)

// handlers groups every REST handler mounted by the router.
type handlers struct {
	health        *rest.HealthHandler
	auth          *rest.AuthHandler
	users         *rest.UserHandler
	categories    *rest.CategoryHandler
	terms         *rest.TermHandler
	decisions     *rest.DecisionHandler
	modifications *rest.ModificationHandler
	likes         *rest.LikeHandler
	comments      *rest.CommentHandler
	reports       *rest.ReportHandler
	notifications *rest.NotificationHandler
}

type actorResolver interface {
	Authenticate(ctx context.Context, token string) (domain.Actor, error)
}

func newRouter(
	cfg *config.Config,
	logger *slog.Logger,
	h handlers,
	resolver actorResolver,
	limiter *middleware.RateLimiter,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Logger(logger),
	))

	r.Get("/live", h.health.Live)
	r.Get("/ready", h.health.Ready)
	r.Get("/health", h.health.Health)

	r.Route("/api", func(api chi.Router) {
		// Auth runs first so the limiter can key on the account.
		api.Use(middleware.Chain(
			middleware.Auth(resolver, logger),
			limiter.Limit(cfg.RateLimit.RequestsPerMinute),
		))

		authLimit := limiter.Limit(cfg.RateLimit.AuthPerMinute)
		api.Route("/auth", func(ar chi.Router) {
			ar.With(authLimit).Post("/login", h.auth.Login)
			ar.With(authLimit).Post("/register", h.auth.Register)
			ar.With(middleware.RequireAuth).Get("/me", h.auth.Me)
		})

		// Public reads.
		api.Get("/users/{id}", h.users.Get)
		api.Get("/categories", h.categories.List)
		api.Get("/categories/{id}", h.categories.Get)
		api.Get("/terms", h.terms.List)
		api.Get("/terms/{id}", h.terms.Get)
		api.Get("/terms/{termID}/likes", h.likes.Count)
		api.Get("/terms/{termID}/comments", h.comments.List)

		api.Group(func(pr chi.Router) {
			pr.Use(middleware.RequireAuth)

			pr.Get("/users", h.users.List)
			pr.Put("/users/me", h.users.UpdateMe)
			pr.Put("/users/{id}/status", h.users.SetStatus)

			pr.Post("/categories", h.categories.Create)
			pr.Put("/categories/{id}", h.categories.Update)
			pr.Delete("/categories/{id}", h.categories.Delete)

			pr.Post("/terms", h.terms.Create)
			pr.Put("/terms/{id}", h.terms.Update)
			pr.Delete("/terms/{id}", h.terms.Delete)

			pr.Post("/terms/{termID}/likes", h.likes.Toggle)
			pr.Post("/terms/{termID}/likes/toggle", h.likes.Toggle)
			pr.Get("/terms/{termID}/likes/me", h.likes.Status)

			pr.Post("/terms/{termID}/comments", h.comments.Create)
			pr.Delete("/comments/{id}", h.comments.Delete)

			pr.Route("/decisions", func(dr chi.Router) {
				dr.Get("/", h.decisions.List)
				dr.Post("/", h.decisions.Create)
				dr.Get("/{id}", h.decisions.Get)
				dr.Put("/{id}", h.decisions.Update)
				dr.Delete("/{id}", h.decisions.Delete)
			})

			pr.Route("/modifications", func(mr chi.Router) {
				mr.Get("/", h.modifications.List)
				mr.Post("/", h.modifications.Create)
				mr.Get("/pending-validation", h.modifications.PendingValidation)
				mr.Get("/{id}", h.modifications.Get)
				mr.Put("/{id}", h.modifications.Update)
				mr.Delete("/{id}", h.modifications.Delete)
			})

			pr.Route("/reports", func(rr chi.Router) {
				rr.Get("/", h.reports.List)
				rr.Post("/", h.reports.Create)
				rr.Get("/{id}", h.reports.Get)
				rr.Put("/{id}", h.reports.UpdateStatus)
				rr.Delete("/{id}", h.reports.Delete)
			})

			pr.Route("/notifications", func(nr chi.Router) {
				nr.Get("/", h.notifications.List)
				nr.Put("/read-all", h.notifications.MarkAllRead)
				nr.Put("/{id}/read", h.notifications.MarkRead)
			})
		})
	})

	return r
}
