package category

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"sync"
)

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	ListFunc    func(ctx context.Context) ([]domain.Category, error)
	CreateFunc  func(ctx context.Context, c *domain.Category) (*domain.Category, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, label string, description string) (*domain.Category, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx context.Context
			C   *domain.Category
		}
		Update []struct {
			Ctx         context.Context
			ID          uuid.UUID
			Label       string
			Description string
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

func (mock *categoryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	if mock.GetByIDFunc == nil {
		panic("categoryRepoMock.GetByIDFunc: method is nil but categoryRepo.GetByID was just called")
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

func (mock *categoryRepoMock) GetByIDCalls() []struct {
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

func (mock *categoryRepoMock) List(ctx context.Context) ([]domain.Category, error) {
	if mock.ListFunc == nil {
		panic("categoryRepoMock.ListFunc: method is nil but categoryRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *categoryRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *categoryRepoMock) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	if mock.CreateFunc == nil {
		panic("categoryRepoMock.CreateFunc: method is nil but categoryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Category
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *categoryRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Category
} {
	var calls []struct {
		Ctx context.Context
		C   *domain.Category
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *categoryRepoMock) Update(ctx context.Context, id uuid.UUID, label string, description string) (*domain.Category, error) {
	if mock.UpdateFunc == nil {
		panic("categoryRepoMock.UpdateFunc: method is nil but categoryRepo.Update was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ID          uuid.UUID
		Label       string
		Description string
	}{
		Ctx:         ctx,
		ID:          id,
		Label:       label,
		Description: description,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, label, description)
}

func (mock *categoryRepoMock) UpdateCalls() []struct {
	Ctx         context.Context
	ID          uuid.UUID
	Label       string
	Description string
} {
	var calls []struct {
		Ctx         context.Context
		ID          uuid.UUID
		Label       string
		Description string
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *categoryRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("categoryRepoMock.DeleteFunc: method is nil but categoryRepo.Delete was just called")
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

func (mock *categoryRepoMock) DeleteCalls() []struct {
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
