package domain

import (
	"time"

	"github.com/google/uuid"
)

// ConsumptionEvent records that a user consumed a product. Events are
// append-only; the barcode is not required to exist in the catalog.
type ConsumptionEvent struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Barcode    string
	ConsumedAt time.Time
}

// ConsumptionRow is a consumption event joined with the product it refers to.
// Username is populated only by cross-user listings.
type ConsumptionRow struct {
	EventID    uuid.UUID
	UserID     uuid.UUID
	Username   string
	ConsumedAt time.Time
	Product    Product
}
