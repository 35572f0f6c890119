package provision

import (
	"context"
	"sync"

	"github.com/heartmarshall/healthscan-backend/internal/domain"
)

var _ productStore = &productStoreMock{}

type productStoreMock struct {
	CountFunc      func(ctx context.Context) (int, error)
	BulkInsertFunc func(ctx context.Context, products []domain.Product) (int64, error)

	calls struct {
		Count []struct {
			Ctx context.Context
		}
		BulkInsert []struct {
			Ctx      context.Context
			Products []domain.Product
		}
	}
	lockCount      sync.RWMutex
	lockBulkInsert sync.RWMutex
}

func (mock *productStoreMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("productStoreMock.CountFunc: method is nil but productStore.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *productStoreMock) CountCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockCount.RLock()
	calls = mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *productStoreMock) BulkInsert(ctx context.Context, products []domain.Product) (int64, error) {
	if mock.BulkInsertFunc == nil {
		panic("productStoreMock.BulkInsertFunc: method is nil but productStore.BulkInsert was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Products []domain.Product
	}{
		Ctx:      ctx,
		Products: products,
	}
	mock.lockBulkInsert.Lock()
	mock.calls.BulkInsert = append(mock.calls.BulkInsert, callInfo)
	mock.lockBulkInsert.Unlock()
	return mock.BulkInsertFunc(ctx, products)
}

func (mock *productStoreMock) BulkInsertCalls() []struct {
	Ctx      context.Context
	Products []domain.Product
} {
	var calls []struct {
		Ctx      context.Context
		Products []domain.Product
	}
	mock.lockBulkInsert.RLock()
	calls = mock.calls.BulkInsert
	mock.lockBulkInsert.RUnlock()
	return calls
}
