package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/healthscan-backend/internal/service/identity"
)

var _ identityService = &identityServiceMock{}

type identityServiceMock struct {
	LoginFunc func(ctx context.Context, input identity.LoginInput) (*identity.LoginResult, error)

	calls struct {
		Login []struct {
			Ctx   context.Context
			Input identity.LoginInput
		}
	}
	lockLogin sync.RWMutex
}

func (mock *identityServiceMock) Login(ctx context.Context, input identity.LoginInput) (*identity.LoginResult, error) {
	if mock.LoginFunc == nil {
		panic("identityServiceMock.LoginFunc: method is nil but identityService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input identity.LoginInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *identityServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input identity.LoginInput
} {
	var calls []struct {
		Ctx   context.Context
		Input identity.LoginInput
	}
	mock.lockLogin.RLock()
	calls = mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}
