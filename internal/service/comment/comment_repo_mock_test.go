package comment

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"sync"
)

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByTermFunc func(ctx context.Context, termID uuid.UUID, limit int, offset int) ([]domain.Comment, error)
	CreateFunc     func(ctx context.Context, c *domain.Comment) error
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByTerm []struct {
			Ctx    context.Context
			TermID uuid.UUID
			Limit  int
			Offset int
		}
		Create []struct {
			Ctx context.Context
			C   *domain.Comment
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID    sync.RWMutex
	lockListByTerm sync.RWMutex
	lockCreate     sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *commentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if mock.GetByIDFunc == nil {
		panic("commentRepoMock.GetByIDFunc: method is nil but commentRepo.GetByID was just called")
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

func (mock *commentRepoMock) GetByIDCalls() []struct {
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

func (mock *commentRepoMock) ListByTerm(ctx context.Context, termID uuid.UUID, limit int, offset int) ([]domain.Comment, error) {
	if mock.ListByTermFunc == nil {
		panic("commentRepoMock.ListByTermFunc: method is nil but commentRepo.ListByTerm was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TermID uuid.UUID
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		TermID: termID,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockListByTerm.Lock()
	mock.calls.ListByTerm = append(mock.calls.ListByTerm, callInfo)
	mock.lockListByTerm.Unlock()
	return mock.ListByTermFunc(ctx, termID, limit, offset)
}

func (mock *commentRepoMock) ListByTermCalls() []struct {
	Ctx    context.Context
	TermID uuid.UUID
	Limit  int
	Offset int
} {
	var calls []struct {
		Ctx    context.Context
		TermID uuid.UUID
		Limit  int
		Offset int
	}
	mock.lockListByTerm.RLock()
	calls = mock.calls.ListByTerm
	mock.lockListByTerm.RUnlock()
	return calls
}

func (mock *commentRepoMock) Create(ctx context.Context, c *domain.Comment) error {
	if mock.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but commentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Comment
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *commentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Comment
} {
	var calls []struct {
		Ctx context.Context
		C   *domain.Comment
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *commentRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("commentRepoMock.DeleteFunc: method is nil but commentRepo.Delete was just called")
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

func (mock *commentRepoMock) DeleteCalls() []struct {
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
