package decision

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"sync"
)

var _ termRepo = &termRepoMock{}

type termRepoMock struct {
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Term, error)
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, status domain.TermStatus) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateStatus []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status domain.TermStatus
		}
	}
	lockGetByID      sync.RWMutex
	lockUpdateStatus sync.RWMutex
}

func (mock *termRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Term, error) {
	if mock.GetByIDFunc == nil {
		panic("termRepoMock.GetByIDFunc: method is nil but termRepo.GetByID was just called")
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

func (mock *termRepoMock) GetByIDCalls() []struct {
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

func (mock *termRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TermStatus) error {
	if mock.UpdateStatusFunc == nil {
		panic("termRepoMock.UpdateStatusFunc: method is nil but termRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.TermStatus
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

func (mock *termRepoMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Status domain.TermStatus
} {
	var calls []struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.TermStatus
	}
	mock.lockUpdateStatus.RLock()
	calls = mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
