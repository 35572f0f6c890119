package identity

import (
	"context"
	"sync"

	"github.com/heartmarshall/healthscan-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByUsernameFunc  func(ctx context.Context, username string) (*domain.User, error)
	InsertIfAbsentFunc func(ctx context.Context, u domain.User) (bool, error)

	calls struct {
		GetByUsername []struct {
			Ctx      context.Context
			Username string
		}
		InsertIfAbsent []struct {
			Ctx context.Context
			U   domain.User
		}
	}
	lockGetByUsername  sync.RWMutex
	lockInsertIfAbsent sync.RWMutex
}

func (mock *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetByUsernameFunc == nil {
		panic("userRepoMock.GetByUsernameFunc: method is nil but userRepo.GetByUsername was just called")
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

func (mock *userRepoMock) GetByUsernameCalls() []struct {
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

func (mock *userRepoMock) InsertIfAbsent(ctx context.Context, u domain.User) (bool, error) {
	if mock.InsertIfAbsentFunc == nil {
		panic("userRepoMock.InsertIfAbsentFunc: method is nil but userRepo.InsertIfAbsent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   domain.User
	}{
		Ctx: ctx,
		U:   u,
	}
	mock.lockInsertIfAbsent.Lock()
	mock.calls.InsertIfAbsent = append(mock.calls.InsertIfAbsent, callInfo)
	mock.lockInsertIfAbsent.Unlock()
	return mock.InsertIfAbsentFunc(ctx, u)
}

func (mock *userRepoMock) InsertIfAbsentCalls() []struct {
	Ctx context.Context
	U   domain.User
} {
	var calls []struct {
		Ctx context.Context
		U   domain.User
	}
	mock.lockInsertIfAbsent.RLock()
	calls = mock.calls.InsertIfAbsent
	mock.lockInsertIfAbsent.RUnlock()
	return calls
}
