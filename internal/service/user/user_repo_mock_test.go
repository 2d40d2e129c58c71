package user

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*domain.User, error)
	UpdateProfileFunc func(ctx context.Context, id uuid.UUID, p domain.ProfileUpdate) (*domain.User, error)
	UpdateStatusFunc  func(ctx context.Context, id uuid.UUID, status domain.UserStatus) (*domain.User, error)
	UpdateRoleFunc    func(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
	ListFunc          func(ctx context.Context, f domain.UserFilter) ([]domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		UpdateProfile []struct {
			Ctx context.Context
			ID  uuid.UUID
			P   domain.ProfileUpdate
		}
		UpdateStatus []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status domain.UserStatus
		}
		UpdateRole []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Role domain.UserRole
		}
		List []struct {
			Ctx context.Context
			F   domain.UserFilter
		}
	}
	lockGetByID       sync.RWMutex
	lockGetByEmail    sync.RWMutex
	lockUpdateProfile sync.RWMutex
	lockUpdateStatus  sync.RWMutex
	lockUpdateRole    sync.RWMutex
	lockList          sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	var calls []struct {
		Ctx   context.Context
		Email string
	}
	mock.lockGetByEmail.RLock()
	calls = mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateProfile(ctx context.Context, id uuid.UUID, p domain.ProfileUpdate) (*domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("userRepoMock.UpdateProfileFunc: method is nil but userRepo.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		P   domain.ProfileUpdate
	}{
		Ctx: ctx,
		ID:  id,
		P:   p,
	}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, id, p)
}

func (mock *userRepoMock) UpdateProfileCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	P   domain.ProfileUpdate
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
		P   domain.ProfileUpdate
	}
	mock.lockUpdateProfile.RLock()
	calls = mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus) (*domain.User, error) {
	if mock.UpdateStatusFunc == nil {
		panic("userRepoMock.UpdateStatusFunc: method is nil but userRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.UserStatus
	}{
		Ctx:    ctx,
		ID:     id,
		Status: status,
	}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *userRepoMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Status domain.UserStatus
} {
	var calls []struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.UserStatus
	}
	mock.lockUpdateStatus.RLock()
	calls = mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	if mock.UpdateRoleFunc == nil {
		panic("userRepoMock.UpdateRoleFunc: method is nil but userRepo.UpdateRole was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		Role domain.UserRole
	}{
		Ctx:  ctx,
		ID:   id,
		Role: role,
	}
	mock.lockUpdateRole.Lock()
	mock.calls.UpdateRole = append(mock.calls.UpdateRole, callInfo)
	mock.lockUpdateRole.Unlock()
	return mock.UpdateRoleFunc(ctx, id, role)
}

func (mock *userRepoMock) UpdateRoleCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Role domain.UserRole
} {
	var calls []struct {
		Ctx  context.Context
		ID   uuid.UUID
		Role domain.UserRole
	}
	mock.lockUpdateRole.RLock()
	calls = mock.calls.UpdateRole
	mock.lockUpdateRole.RUnlock()
	return calls
}

func (mock *userRepoMock) List(ctx context.Context, f domain.UserFilter) ([]domain.User, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.UserFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *userRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.UserFilter
} {
	var calls []struct {
		Ctx context.Context
		F   domain.UserFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
