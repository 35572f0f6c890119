package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/healthscan-backend/internal/domain"
	"github.com/heartmarshall/healthscan-backend/internal/service/catalog"
)

var _ catalogService = &catalogServiceMock{}

type catalogServiceMock struct {
	LookupFunc        func(ctx context.Context, barcode string) (*catalog.ProductView, bool, error)
	LookupImageFunc   func(ctx context.Context, image []byte) (*catalog.ScanResult, error)
	UpsertProductFunc func(ctx context.Context, input catalog.UpsertProductInput) (*domain.Product, error)

	calls struct {
		Lookup []struct {
			Ctx     context.Context
			Barcode string
		}
		LookupImage []struct {
			Ctx   context.Context
			Image []byte
		}
		UpsertProduct []struct {
			Ctx   context.Context
			Input catalog.UpsertProductInput
		}
	}
	lockLookup        sync.RWMutex
	lockLookupImage   sync.RWMutex
	lockUpsertProduct sync.RWMutex
}

func (mock *catalogServiceMock) Lookup(ctx context.Context, barcode string) (*catalog.ProductView, bool, error) {
	if mock.LookupFunc == nil {
		panic("catalogServiceMock.LookupFunc: method is nil but catalogService.Lookup was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Barcode string
	}{
		Ctx:     ctx,
		Barcode: barcode,
	}
	mock.lockLookup.Lock()
	mock.calls.Lookup = append(mock.calls.Lookup, callInfo)
	mock.lockLookup.Unlock()
	return mock.LookupFunc(ctx, barcode)
}

func (mock *catalogServiceMock) LookupCalls() []struct {
	Ctx     context.Context
	Barcode string
} {
	var calls []struct {
		Ctx     context.Context
		Barcode string
	}
	mock.lockLookup.RLock()
	calls = mock.calls.Lookup
	mock.lockLookup.RUnlock()
	return calls
}

func (mock *catalogServiceMock) LookupImage(ctx context.Context, image []byte) (*catalog.ScanResult, error) {
	if mock.LookupImageFunc == nil {
		panic("catalogServiceMock.LookupImageFunc: method is nil but catalogService.LookupImage was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Image []byte
	}{
		Ctx:   ctx,
		Image: image,
	}
	mock.lockLookupImage.Lock()
	mock.calls.LookupImage = append(mock.calls.LookupImage, callInfo)
	mock.lockLookupImage.Unlock()
	return mock.LookupImageFunc(ctx, image)
}

func (mock *catalogServiceMock) LookupImageCalls() []struct {
	Ctx   context.Context
	Image []byte
} {
	var calls []struct {
		Ctx   context.Context
		Image []byte
	}
	mock.lockLookupImage.RLock()
	calls = mock.calls.LookupImage
	mock.lockLookupImage.RUnlock()
	return calls
}

func (mock *catalogServiceMock) UpsertProduct(ctx context.Context, input catalog.UpsertProductInput) (*domain.Product, error) {
	if mock.UpsertProductFunc == nil {
		panic("catalogServiceMock.UpsertProductFunc: method is nil but catalogService.UpsertProduct was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.UpsertProductInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpsertProduct.Lock()
	mock.calls.UpsertProduct = append(mock.calls.UpsertProduct, callInfo)
	mock.lockUpsertProduct.Unlock()
	return mock.UpsertProductFunc(ctx, input)
}

func (mock *catalogServiceMock) UpsertProductCalls() []struct {
	Ctx   context.Context
	Input catalog.UpsertProductInput
} {
	var calls []struct {
		Ctx   context.Context
		Input catalog.UpsertProductInput
	}
	mock.lockUpsertProduct.RLock()
	calls = mock.calls.UpsertProduct
	mock.lockUpsertProduct.RUnlock()
	return calls
}
