package report

import (
	"context"
	"sync"

	"github.com/heartmarshall/healthscan-backend/internal/domain"
)

var _ userDirectory = &userDirectoryMock{}

type userDirectoryMock struct {
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
	ListUsernamesFunc func(ctx context.Context) ([]string, error)

	calls struct {
		GetByUsername []struct {
			Ctx      context.Context
			Username string
		}
		ListUsernames []struct {
			Ctx context.Context
		}
	}
	lockGetByUsername sync.RWMutex
	lockListUsernames sync.RWMutex
}

func (mock *userDirectoryMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetByUsernameFunc == nil {
		panic("userDirectoryMock.GetByUsernameFunc: method is nil but userDirectory.GetByUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{
		Ctx:      ctx,
		Username: username,
	}
	mock.lockGetByUsername.Lock()
	mock.calls.GetByUsername = append(mock.calls.GetByUsername, callInfo)
	mock.lockGetByUsername.Unlock()
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *userDirectoryMock) GetByUsernameCalls() []struct {
	Ctx      context.Context
	Username string
} {
	var calls []struct {
		Ctx      context.Context
		Username string
	}
	mock.lockGetByUsername.RLock()
	calls = mock.calls.GetByUsername
	mock.lockGetByUsername.RUnlock()
	return calls
}

func (mock *userDirectoryMock) ListUsernames(ctx context.Context) ([]string, error) {
	if mock.ListUsernamesFunc == nil {
		panic("userDirectoryMock.ListUsernamesFunc: method is nil but userDirectory.ListUsernames was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListUsernames.Lock()
	mock.calls.ListUsernames = append(mock.calls.ListUsernames, callInfo)
	mock.lockListUsernames.Unlock()
	return mock.ListUsernamesFunc(ctx)
}

func (mock *userDirectoryMock) ListUsernamesCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListUsernames.RLock()
	calls = mock.calls.ListUsernames
	mock.lockListUsernames.RUnlock()
	return calls
}
