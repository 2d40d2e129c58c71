package middleware

import (
	"context"
	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"sync"
)

var _ actorResolver = &actorResolverMock{}

type actorResolverMock struct {
	AuthenticateFunc func(ctx context.Context, token string) (domain.Actor, error)

	calls struct {
		Authenticate []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockAuthenticate sync.RWMutex
}

func (mock *actorResolverMock) Authenticate(ctx context.Context, token string) (domain.Actor, error) {
	if mock.AuthenticateFunc == nil {
		panic("actorResolverMock.AuthenticateFunc: method is nil but actorResolver.Authenticate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{
		Ctx:   ctx,
		Token: token,
	}
	mock.lockAuthenticate.Lock()
	mock.calls.Authenticate = append(mock.calls.Authenticate, callInfo)
	mock.lockAuthenticate.Unlock()
	return mock.AuthenticateFunc(ctx, token)
}

func (mock *actorResolverMock) AuthenticateCalls() []struct {
	Ctx   context.Context
	Token string
} {
	var calls []struct {
		Ctx   context.Context
		Token string
	}
	mock.lockAuthenticate.RLock()
	calls = mock.calls.Authenticate
	mock.lockAuthenticate.RUnlock()
	return calls
}
