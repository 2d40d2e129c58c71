package comment

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"sync"
)

var _ termRepo = &termRepoMock{}

type termRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Term, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
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
