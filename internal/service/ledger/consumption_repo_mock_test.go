package ledger

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/healthscan-backend/internal/domain"
)

var _ consumptionRepo = &consumptionRepoMock{}

type consumptionRepoMock struct {
	CreateFunc         func(ctx context.Context, e domain.ConsumptionEvent) error
	ListByUserFunc     func(ctx context.Context, userID uuid.UUID) ([]domain.ConsumptionRow, error)
	ListByUsernameFunc func(ctx context.Context, username string) ([]domain.ConsumptionRow, error)
	ListAllFunc        func(ctx context.Context) ([]domain.ConsumptionRow, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   domain.ConsumptionEvent
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ListByUsername []struct {
			Ctx      context.Context
			Username string
		}
		ListAll []struct {
			Ctx context.Context
		}
	}
	lockCreate         sync.RWMutex
	lockListByUser     sync.RWMutex
	lockListByUsername sync.RWMutex
	lockListAll        sync.RWMutex
}

func (mock *consumptionRepoMock) Create(ctx context.Context, e domain.ConsumptionEvent) error {
	if mock.CreateFunc == nil {
		panic("consumptionRepoMock.CreateFunc: method is nil but consumptionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.ConsumptionEvent
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *consumptionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   domain.ConsumptionEvent
} {
	var calls []struct {
		Ctx context.Context
		E   domain.ConsumptionEvent
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *consumptionRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ConsumptionRow, error) {
	if mock.ListByUserFunc == nil {
		panic("consumptionRepoMock.ListByUserFunc: method is nil but consumptionRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *consumptionRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockListByUser.RLock()
	calls = mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *consumptionRepoMock) ListByUsername(ctx context.Context, username string) ([]domain.ConsumptionRow, error) {
	if mock.ListByUsernameFunc == nil {
		panic("consumptionRepoMock.ListByUsernameFunc: method is nil but consumptionRepo.ListByUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{
		Ctx:      ctx,
		Username: username,
	}
	mock.lockListByUsername.Lock()
	mock.calls.ListByUsername = append(mock.calls.ListByUsername, callInfo)
	mock.lockListByUsername.Unlock()
	return mock.ListByUsernameFunc(ctx, username)
}

func (mock *consumptionRepoMock) ListByUsernameCalls() []struct {
	Ctx      context.Context
	Username string
} {
	var calls []struct {
		Ctx      context.Context
		Username string
	}
	mock.lockListByUsername.RLock()
	calls = mock.calls.ListByUsername
	mock.lockListByUsername.RUnlock()
	return calls
}

func (mock *consumptionRepoMock) ListAll(ctx context.Context) ([]domain.ConsumptionRow, error) {
	if mock.ListAllFunc == nil {
		panic("consumptionRepoMock.ListAllFunc: method is nil but consumptionRepo.ListAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx)
}

func (mock *consumptionRepoMock) ListAllCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListAll.RLock()
	calls = mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}
