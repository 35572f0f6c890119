package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/healthscan-backend/internal/domain"
)

var _ ledgerService = &ledgerServiceMock{}

type ledgerServiceMock struct {
	ConsumeFunc func(ctx context.Context, barcode string) (*domain.ConsumptionEvent, error)

	calls struct {
		Consume []struct {
			Ctx     context.Context
			Barcode string
		}
	}
	lockConsume sync.RWMutex
}

func (mock *ledgerServiceMock) Consume(ctx context.Context, barcode string) (*domain.ConsumptionEvent, error) {
	if mock.ConsumeFunc == nil {
		panic("ledgerServiceMock.ConsumeFunc: method is nil but ledgerService.Consume was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Barcode string
	}{
		Ctx:     ctx,
		Barcode: barcode,
	}
	mock.lockConsume.Lock()
	mock.calls.Consume = append(mock.calls.Consume, callInfo)
	mock.lockConsume.Unlock()
	return mock.ConsumeFunc(ctx, barcode)
}

func (mock *ledgerServiceMock) ConsumeCalls() []struct {
	Ctx     context.Context
	Barcode string
} {
	var calls []struct {
		Ctx     context.Context
		Barcode string
	}
	mock.lockConsume.RLock()
	calls = mock.calls.Consume
	mock.lockConsume.RUnlock()
	return calls
}
