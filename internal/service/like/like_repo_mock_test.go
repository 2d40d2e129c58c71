package like

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ likeRepo = &likeRepoMock{}

type likeRepoMock struct {
	ExistsFunc func(ctx context.Context, userID uuid.UUID, termID uuid.UUID) (bool, error)
	InsertFunc func(ctx context.Context, userID uuid.UUID, termID uuid.UUID) error
	DeleteFunc func(ctx context.Context, userID uuid.UUID, termID uuid.UUID) (bool, error)
	CountFunc  func(ctx context.Context, termID uuid.UUID) (int, error)

	calls struct {
		Exists []struct {
			Ctx    context.Context
			UserID uuid.UUID
			TermID uuid.UUID
		}
		Insert []struct {
			Ctx    context.Context
			UserID uuid.UUID
			TermID uuid.UUID
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			TermID uuid.UUID
		}
		Count []struct {
			Ctx    context.Context
			TermID uuid.UUID
		}
	}
	lockExists sync.RWMutex
	lockInsert sync.RWMutex
	lockDelete sync.RWMutex
	lockCount  sync.RWMutex
}

func (mock *likeRepoMock) Exists(ctx context.Context, userID uuid.UUID, termID uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("likeRepoMock.ExistsFunc: method is nil but likeRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		TermID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		TermID: termID,
	}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, userID, termID)
}

func (mock *likeRepoMock) ExistsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	TermID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		TermID uuid.UUID
	}
	mock.lockExists.RLock()
	calls = mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *likeRepoMock) Insert(ctx context.Context, userID uuid.UUID, termID uuid.UUID) error {
	if mock.InsertFunc == nil {
		panic("likeRepoMock.InsertFunc: method is nil but likeRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		TermID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		TermID: termID,
	}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, userID, termID)
}

func (mock *likeRepoMock) InsertCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	TermID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		TermID uuid.UUID
	}
	mock.lockInsert.RLock()
	calls = mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *likeRepoMock) Delete(ctx context.Context, userID uuid.UUID, termID uuid.UUID) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("likeRepoMock.DeleteFunc: method is nil but likeRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		TermID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		TermID: termID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, termID)
}

func (mock *likeRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	TermID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		TermID uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *likeRepoMock) Count(ctx context.Context, termID uuid.UUID) (int, error) {
	if mock.CountFunc == nil {
		panic("likeRepoMock.CountFunc: method is nil but likeRepo.Count was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TermID uuid.UUID
	}{
		Ctx:    ctx,
		TermID: termID,
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, termID)
}

func (mock *likeRepoMock) CountCalls() []struct {
	Ctx    context.Context
	TermID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		TermID uuid.UUID
	}
	mock.lockCount.RLock()
	calls = mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}
