package decision

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"sync"
)

var _ decisionRepo = &decisionRepoMock{}

type decisionRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Decision, error)
	ListFunc    func(ctx context.Context, termID *uuid.UUID, limit int, offset int) ([]domain.Decision, error)
	CreateFunc  func(ctx context.Context, d *domain.Decision) (*domain.Decision, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, typ domain.DecisionType, comment string) (*domain.Decision, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			TermID *uuid.UUID
			Limit  int
			Offset int
		}
		Create []struct {
			Ctx context.Context
			D   *domain.Decision
		}
		Update []struct {
			Ctx     context.Context
			ID      uuid.UUID
			Typ     domain.DecisionType
			Comment string
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

func (mock *decisionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Decision, error) {
	if mock.GetByIDFunc == nil {
		panic("decisionRepoMock.GetByIDFunc: method is nil but decisionRepo.GetByID was just called")
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

func (mock *decisionRepoMock) GetByIDCalls() []struct {
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

func (mock *decisionRepoMock) List(ctx context.Context, termID *uuid.UUID, limit int, offset int) ([]domain.Decision, error) {
	if mock.ListFunc == nil {
		panic("decisionRepoMock.ListFunc: method is nil but decisionRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TermID *uuid.UUID
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		TermID: termID,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, termID, limit, offset)
}

func (mock *decisionRepoMock) ListCalls() []struct {
	Ctx    context.Context
	TermID *uuid.UUID
	Limit  int
	Offset int
} {
	var calls []struct {
		Ctx    context.Context
		TermID *uuid.UUID
		Limit  int
		Offset int
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *decisionRepoMock) Create(ctx context.Context, d *domain.Decision) (*domain.Decision, error) {
	if mock.CreateFunc == nil {
		panic("decisionRepoMock.CreateFunc: method is nil but decisionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   *domain.Decision
	}{
		Ctx: ctx,
		D:   d,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, d)
}

func (mock *decisionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	D   *domain.Decision
} {
	var calls []struct {
		Ctx context.Context
		D   *domain.Decision
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *decisionRepoMock) Update(ctx context.Context, id uuid.UUID, typ domain.DecisionType, comment string) (*domain.Decision, error) {
	if mock.UpdateFunc == nil {
		panic("decisionRepoMock.UpdateFunc: method is nil but decisionRepo.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      uuid.UUID
		Typ     domain.DecisionType
		Comment string
	}{
		Ctx:     ctx,
		ID:      id,
		Typ:     typ,
		Comment: comment,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, typ, comment)
}

func (mock *decisionRepoMock) UpdateCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	Typ     domain.DecisionType
	Comment string
} {
	var calls []struct {
		Ctx     context.Context
		ID      uuid.UUID
		Typ     domain.DecisionType
		Comment string
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *decisionRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("decisionRepoMock.DeleteFunc: method is nil but decisionRepo.Delete was just called")
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

func (mock *decisionRepoMock) DeleteCalls() []struct {
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
