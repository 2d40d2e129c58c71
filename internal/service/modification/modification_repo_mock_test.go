package modification

import (
	"context"
	"encoding/json"
	"github.com/google/uuid"
	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"sync"
)

var _ modificationRepo = &modificationRepoMock{}

type modificationRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Modification, error)
	ListFunc    func(ctx context.Context, f domain.ModificationFilter) ([]domain.Modification, error)
	CreateFunc  func(ctx context.Context, m *domain.Modification) (*domain.Modification, error)
	ResolveFunc func(ctx context.Context, id uuid.UUID, res domain.Resolution) (*domain.Modification, error)
	AmendFunc   func(ctx context.Context, id uuid.UUID, comment *string, changes json.RawMessage) (*domain.Modification, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.ModificationFilter
		}
		Create []struct {
			Ctx context.Context
			M   *domain.Modification
		}
		Resolve []struct {
			Ctx context.Context
			ID  uuid.UUID
			Res domain.Resolution
		}
		Amend []struct {
			Ctx     context.Context
			ID      uuid.UUID
			Comment *string
			Changes json.RawMessage
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCreate  sync.RWMutex
	lockResolve sync.RWMutex
	lockAmend   sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *modificationRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Modification, error) {
	if mock.GetByIDFunc == nil {
		panic("modificationRepoMock.GetByIDFunc: method is nil but modificationRepo.GetByID was just called")
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

func (mock *modificationRepoMock) GetByIDCalls() []struct {
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

func (mock *modificationRepoMock) List(ctx context.Context, f domain.ModificationFilter) ([]domain.Modification, error) {
	if mock.ListFunc == nil {
		panic("modificationRepoMock.ListFunc: method is nil but modificationRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.ModificationFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *modificationRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.ModificationFilter
} {
	var calls []struct {
		Ctx context.Context
		F   domain.ModificationFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *modificationRepoMock) Create(ctx context.Context, m *domain.Modification) (*domain.Modification, error) {
	if mock.CreateFunc == nil {
		panic("modificationRepoMock.CreateFunc: method is nil but modificationRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.Modification
	}{
		Ctx: ctx,
		M:   m,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *modificationRepoMock) CreateCalls() []struct {
	Ctx context.Context
	M   *domain.Modification
} {
	var calls []struct {
		Ctx context.Context
		M   *domain.Modification
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *modificationRepoMock) Resolve(ctx context.Context, id uuid.UUID, res domain.Resolution) (*domain.Modification, error) {
	if mock.ResolveFunc == nil {
		panic("modificationRepoMock.ResolveFunc: method is nil but modificationRepo.Resolve was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		Res domain.Resolution
	}{
		Ctx: ctx,
		ID:  id,
		Res: res,
	}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, id, res)
}

func (mock *modificationRepoMock) ResolveCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	Res domain.Resolution
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
		Res domain.Resolution
	}
	mock.lockResolve.RLock()
	calls = mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}

func (mock *modificationRepoMock) Amend(ctx context.Context, id uuid.UUID, comment *string, changes json.RawMessage) (*domain.Modification, error) {
	if mock.AmendFunc == nil {
		panic("modificationRepoMock.AmendFunc: method is nil but modificationRepo.Amend was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      uuid.UUID
		Comment *string
		Changes json.RawMessage
	}{
		Ctx:     ctx,
		ID:      id,
		Comment: comment,
		Changes: changes,
	}
	mock.lockAmend.Lock()
	mock.calls.Amend = append(mock.calls.Amend, callInfo)
	mock.lockAmend.Unlock()
	return mock.AmendFunc(ctx, id, comment, changes)
}

func (mock *modificationRepoMock) AmendCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	Comment *string
	Changes json.RawMessage
} {
	var calls []struct {
		Ctx     context.Context
		ID      uuid.UUID
		Comment *string
		Changes json.RawMessage
	}
	mock.lockAmend.RLock()
	calls = mock.calls.Amend
	mock.lockAmend.RUnlock()
	return calls
}

func (mock *modificationRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("modificationRepoMock.DeleteFunc: method is nil but modificationRepo.Delete was just called")
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

func (mock *modificationRepoMock) DeleteCalls() []struct {
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
