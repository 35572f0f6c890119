package catalog

import (
	"context"
	"sync"

	"github.com/heartmarshall/healthscan-backend/internal/domain"
)

var _ productRepo = &productRepoMock{}

type productRepoMock struct {
	GetByBarcodeFunc func(ctx context.Context, barcode string) (*domain.Product, error)
	UpsertFunc       func(ctx context.Context, p domain.Product) (*domain.Product, error)

	calls struct {
		GetByBarcode []struct {
			Ctx     context.Context
			Barcode string
		}
		Upsert []struct {
			Ctx context.Context
			P   domain.Product
		}
	}
	lockGetByBarcode sync.RWMutex
	lockUpsert       sync.RWMutex
}

func (mock *productRepoMock) GetByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	if mock.GetByBarcodeFunc == nil {
		panic("productRepoMock.GetByBarcodeFunc: method is nil but productRepo.GetByBarcode was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Barcode string
	}{
		Ctx:     ctx,
		Barcode: barcode,
	}
	mock.lockGetByBarcode.Lock()
	mock.calls.GetByBarcode = append(mock.calls.GetByBarcode, callInfo)
	mock.lockGetByBarcode.Unlock()
	return mock.GetByBarcodeFunc(ctx, barcode)
}

func (mock *productRepoMock) GetByBarcodeCalls() []struct {
	Ctx     context.Context
	Barcode string
} {
	var calls []struct {
		Ctx     context.Context
		Barcode string
	}
	mock.lockGetByBarcode.RLock()
	calls = mock.calls.GetByBarcode
	mock.lockGetByBarcode.RUnlock()
	return calls
}

func (mock *productRepoMock) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if mock.UpsertFunc == nil {
		panic("productRepoMock.UpsertFunc: method is nil but productRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Product
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, p)
}

func (mock *productRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	P   domain.Product
} {
	var calls []struct {
		Ctx context.Context
		P   domain.Product
	}
	mock.lockUpsert.RLock()
	calls = mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
