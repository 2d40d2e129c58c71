package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexicon-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, p domain.ProfileUpdate) (*domain.User, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus) (*domain.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
	List(ctx context.Context, f domain.UserFilter) ([]domain.User, error)
}

// notifier delivers best-effort notifications.
type notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements profile and account administration operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	notify notifier
	tx     txManager
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	notify notifier,
	tx txManager,
) *Service {
	return &Service{
		log:    logger.With("service", "user"),
		users:  users,
		notify: notify,
		tx:     tx,
	}
}
