package auth

import (
	"github.com/google/uuid"
	"github.com/heartmarshall/lexicon-backend/internal/auth"
	"github.com/heartmarshall/lexicon-backend/internal/domain"
	"sync"
	"time"
)

var _ tokenManager = &tokenManagerMock{}

type tokenManagerMock struct {
	GenerateAccessTokenFunc func(userID uuid.UUID, role domain.UserRole) (string, time.Time, error)
	ValidateAccessTokenFunc func(token string) (auth.Claims, error)

	calls struct {
		GenerateAccessToken []struct {
			UserID uuid.UUID
			Role   domain.UserRole
		}
		ValidateAccessToken []struct {
			Token string
		}
	}
	lockGenerateAccessToken sync.RWMutex
	lockValidateAccessToken sync.RWMutex
}

func (mock *tokenManagerMock) GenerateAccessToken(userID uuid.UUID, role domain.UserRole) (string, time.Time, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("tokenManagerMock.GenerateAccessTokenFunc: method is nil but tokenManager.GenerateAccessToken was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Role   domain.UserRole
	}{
		UserID: userID,
		Role:   role,
	}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(userID, role)
}

func (mock *tokenManagerMock) GenerateAccessTokenCalls() []struct {
	UserID uuid.UUID
	Role   domain.UserRole
} {
	var calls []struct {
		UserID uuid.UUID
		Role   domain.UserRole
	}
	mock.lockGenerateAccessToken.RLock()
	calls = mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}

func (mock *tokenManagerMock) ValidateAccessToken(token string) (auth.Claims, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("tokenManagerMock.ValidateAccessTokenFunc: method is nil but tokenManager.ValidateAccessToken was just called")
	}
	callInfo := struct {
		Token string
	}{
		Token: token,
	}
	mock.lockValidateAccessToken.Lock()
	mock.calls.ValidateAccessToken = append(mock.calls.ValidateAccessToken, callInfo)
	mock.lockValidateAccessToken.Unlock()
	return mock.ValidateAccessTokenFunc(token)
}

func (mock *tokenManagerMock) ValidateAccessTokenCalls() []struct {
	Token string
} {
	var calls []struct {
		Token string
	}
	mock.lockValidateAccessToken.RLock()
	calls = mock.calls.ValidateAccessToken
	mock.lockValidateAccessToken.RUnlock()
	return calls
}
