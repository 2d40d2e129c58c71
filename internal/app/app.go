package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/lexicon-backend/internal/adapter/postgres"
	categoryrepo "github.com/heartmarshall/lexicon-backend/internal/adapter/postgres/category"
	commentrepo "github.com/heartmarshall/lexicon-backend/internal/adapter/postgres/comment"
	decisionrepo "github.com/heartmarshall/lexicon-backend/internal/adapter/postgres/decision"
	likerepo "github.com/heartmarshall/lexicon-backend/internal/adapter/postgres/like"
	modificationrepo "github.com/heartmarshall/lexicon-backend/internal/adapter/postgres/modification"
	notificationrepo "github.com/heartmarshall/lexicon-backend/internal/adapter/postgres/notification"
	reportrepo "github.com/heartmarshall/lexicon-backend/internal/adapter/postgres/report"
	termrepo "github.com/heartmarshall/lexicon-backend/internal/adapter/postgres/term"
	userrepo "github.com/heartmarshall/lexicon-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/lexicon-backend/internal/adapter/redis"
	authpkg "github.com/heartmarshall/lexicon-backend/internal/auth"
	"github.com/heartmarshall/lexicon-backend/internal/config"
	"github.com/heartmarshall/lexicon-backend/internal/domain"
	authsvc "github.com/heartmarshall/lexicon-backend/internal/service/auth"
	categorysvc "github.com/heartmarshall/lexicon-backend/internal/service/category"
	commentsvc "github.com/heartmarshall/lexicon-backend/internal/service/comment"
	decisionsvc "github.com/heartmarshall/lexicon-backend/internal/service/decision"
	likesvc "github.com/heartmarshall/lexicon-backend/internal/service/like"
	modificationsvc "github.com/heartmarshall/lexicon-backend/internal/service/modification"
	notificationsvc "github.com/heartmarshall/lexicon-backend/internal/service/notification"
	reportsvc "github.com/heartmarshall/lexicon-backend/internal/service/report"
	termsvc "github.com/heartmarshall/lexicon-backend/internal/service/term"
	usersvc "github.com/heartmarshall/lexicon-backend/internal/service/user"
	"github.com/heartmarshall/lexicon-backend/internal/transport/middleware"
	"github.com/heartmarshall/lexicon-backend/internal/transport/rest"
)

// Publisher fans notifications out to live subscribers.
type Publisher interface {
	Publish(ctx context.Context, n domain.Notification) error
}

// Container is the fully wired application.
type Container struct {
	Handler http.Handler
	Users   *usersvc.Service

	limiter *middleware.RateLimiter
}

// Close stops background workers started by Build.
func (c *Container) Close() {
	c.limiter.Stop()
}

// Build wires repositories, services and HTTP handlers over pool. pub may
// be nil.
func Build(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, pub Publisher) *Container {
	txm := postgres.NewTxManager(pool)

	// Repositories.
	users := userrepo.New(pool)
	categories := categoryrepo.New(pool)
	terms := termrepo.New(pool)
	decisions := decisionrepo.New(pool)
	modifications := modificationrepo.New(pool)
	likes := likerepo.New(pool)
	comments := commentrepo.New(pool)
	reports := reportrepo.New(pool)
	notifications := notificationrepo.New(pool)

	// Auth primitives.
	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := authpkg.NewPasswordHasher(cfg.Auth.PasswordHashCost)

	// Services.
	notifySvc := notificationsvc.NewService(logger, notifications, pub)
	authService := authsvc.NewService(logger, users, jwtMgr, hasher, cfg.Auth)
	userService := usersvc.NewService(logger, users, notifySvc, txm)
	categoryService := categorysvc.NewService(logger, categories)
	termService := termsvc.NewService(logger, terms, categories)
	decisionService := decisionsvc.NewService(logger, decisions, terms, notifySvc, txm)
	modificationService := modificationsvc.NewService(logger, modifications, terms, notifySvc)
	likeService := likesvc.NewService(logger, likes, terms, notifySvc, txm)
	commentService := commentsvc.NewService(logger, comments, terms, notifySvc)
	reportService := reportsvc.NewService(logger, reports, terms, notifySvc)

	deps := []rest.Dependency{{Name: "database", Check: pool}}
	if p, ok := pub.(interface{ Ping(context.Context) error }); ok {
		deps = append(deps, rest.Dependency{Name: "redis", Check: p, Optional: true})
	}

	h := handlers{
		health:        rest.NewHealthHandler(BuildVersion(), deps...),
		auth:          rest.NewAuthHandler(authService, logger),
		users:         rest.NewUserHandler(userService, logger),
		categories:    rest.NewCategoryHandler(categoryService, logger),
		terms:         rest.NewTermHandler(termService, logger),
		decisions:     rest.NewDecisionHandler(decisionService, logger),
		modifications: rest.NewModificationHandler(modificationService, logger),
		likes:         rest.NewLikeHandler(likeService, logger),
		comments:      rest.NewCommentHandler(commentService, logger),
		reports:       rest.NewReportHandler(reportService, logger),
		notifications: rest.NewNotificationHandler(notifySvc, logger),
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	return &Container{
		Handler: newRouter(cfg, logger, h, authService, limiter),
		Users:   userService,
		limiter: limiter,
	}
}

// Run connects to the database (and Redis when configured), serves the
// REST API and shuts down gracefully once ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	var pub Publisher
	if cfg.Redis.Enabled() {
		client, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("app: %w", err)
		}
		defer func() { _ = client.Close() }()
		pub = redis.NewPublisher(client, cfg.Redis.ChannelPrefix)
		logger.Info("notification fan-out enabled", slog.String("redis_addr", cfg.Redis.Addr))
	}

	c := Build(cfg, logger, pool, pub)
	defer c.Close()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      c.Handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("app: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
