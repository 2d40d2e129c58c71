package term

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"sync"
)

var _ termRepo = &termRepoMock{}

type termRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Term, error)
	ListFunc    func(ctx context.Context, f domain.TermFilter) ([]domain.Term, error)
	CreateFunc  func(ctx context.Context, t *domain.Term) (*domain.Term, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, c domain.TermChanges) (*domain.Term, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.TermFilter
		}
		Create []struct {
			Ctx context.Context
			T   *domain.Term
		}
		Update []struct {
			Ctx context.Context
			ID  uuid.UUID
			C   domain.TermChanges
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
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

func (mock *termRepoMock) List(ctx context.Context, f domain.TermFilter) ([]domain.Term, error) {
	if mock.ListFunc == nil {
		panic("termRepoMock.ListFunc: method is nil but termRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.TermFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *termRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.TermFilter
} {
	var calls []struct {
		Ctx context.Context
		F   domain.TermFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *termRepoMock) Create(ctx context.Context, t *domain.Term) (*domain.Term, error) {
	if mock.CreateFunc == nil {
		panic("termRepoMock.CreateFunc: method is nil but termRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Term
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *termRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Term
} {
	var calls []struct {
		Ctx context.Context
		T   *domain.Term
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *termRepoMock) Update(ctx context.Context, id uuid.UUID, c domain.TermChanges) (*domain.Term, error) {
	if mock.UpdateFunc == nil {
		panic("termRepoMock.UpdateFunc: method is nil but termRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		C   domain.TermChanges
	}{
		Ctx: ctx,
		ID:  id,
		C:   c,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, c)
}

func (mock *termRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	C   domain.TermChanges
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
		C   domain.TermChanges
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *termRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("termRepoMock.DeleteFunc: method is nil but termRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *termRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
