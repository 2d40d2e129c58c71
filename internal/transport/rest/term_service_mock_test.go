package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"github.com/heartmarshall/lexicon-backend/internal/service/term"
	"sync"
)

var _ termService = &termServiceMock{}

type termServiceMock struct {
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.Term, error)
	ListFunc   func(ctx context.Context, input term.ListInput) ([]domain.Term, error)
	CreateFunc func(ctx context.Context, input term.CreateInput) (*domain.Term, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, input term.UpdateInput) (*domain.Term, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Input term.ListInput
		}
		Create []struct {
			Ctx   context.Context
			Input term.CreateInput
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input term.UpdateInput
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGet    sync.RWMutex
	lockList   sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *termServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Term, error) {
	if mock.GetFunc == nil {
		panic("termServiceMock.GetFunc: method is nil but termService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *termServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *termServiceMock) List(ctx context.Context, input term.ListInput) ([]domain.Term, error) {
	if mock.ListFunc == nil {
		panic("termServiceMock.ListFunc: method is nil but termService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input term.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *termServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input term.ListInput
} {
	var calls []struct {
		Ctx   context.Context
		Input term.ListInput
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *termServiceMock) Create(ctx context.Context, input term.CreateInput) (*domain.Term, error) {
	if mock.CreateFunc == nil {
		panic("termServiceMock.CreateFunc: method is nil but termService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input term.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *termServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input term.CreateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input term.CreateInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *termServiceMock) Update(ctx context.Context, id uuid.UUID, input term.UpdateInput) (*domain.Term, error) {
	if mock.UpdateFunc == nil {
		panic("termServiceMock.UpdateFunc: method is nil but termService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input term.UpdateInput
	}{
		Ctx:   ctx,
		ID:    id,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *termServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input term.UpdateInput
} {
	var calls []struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input term.UpdateInput
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *termServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("termServiceMock.DeleteFunc: method is nil but termService.Delete was just called")
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

func (mock *termServiceMock) DeleteCalls() []struct {
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
