package provision

import (
	"context"
	"sync"
	"time"
)

var _ stateStore = &stateStoreMock{}

type stateStoreMock struct {
	CompletedFunc     func(ctx context.Context) (bool, error)
	MarkCompletedFunc func(ctx context.Context, at time.Time) error

	calls struct {
		Completed []struct {
			Ctx context.Context
		}
		MarkCompleted []struct {
			Ctx context.Context
			At  time.Time
		}
	}
	lockCompleted     sync.RWMutex
	lockMarkCompleted sync.RWMutex
}

func (mock *stateStoreMock) Completed(ctx context.Context) (bool, error) {
	if mock.CompletedFunc == nil {
		panic("stateStoreMock.CompletedFunc: method is nil but stateStore.Completed was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCompleted.Lock()
	mock.calls.Completed = append(mock.calls.Completed, callInfo)
	mock.lockCompleted.Unlock()
	return mock.CompletedFunc(ctx)
}

func (mock *stateStoreMock) CompletedCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockCompleted.RLock()
	calls = mock.calls.Completed
	mock.lockCompleted.RUnlock()
	return calls
}

func (mock *stateStoreMock) MarkCompleted(ctx context.Context, at time.Time) error {
	if mock.MarkCompletedFunc == nil {
		panic("stateStoreMock.MarkCompletedFunc: method is nil but stateStore.MarkCompleted was just called")
	}
	callInfo := struct {
		Ctx context.Context
		At  time.Time
	}{
		Ctx: ctx,
		At:  at,
	}
	mock.lockMarkCompleted.Lock()
	mock.calls.MarkCompleted = append(mock.calls.MarkCompleted, callInfo)
	mock.lockMarkCompleted.Unlock()
	return mock.MarkCompletedFunc(ctx, at)
}

func (mock *stateStoreMock) MarkCompletedCalls() []struct {
	Ctx context.Context
	At  time.Time
} {
	var calls []struct {
		Ctx context.Context
		At  time.Time
	}
	mock.lockMarkCompleted.RLock()
	calls = mock.calls.MarkCompleted
	mock.lockMarkCompleted.RUnlock()
	return calls
}
