package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is an item of the shop catalog. Stock is a single counter (one shop,
// one location) and is mutated only by bill creation and explicit stock
// adjustments, never by product updates.
type Product struct {
	ID            string
	Name          string
	CategoryID    string
	DistributorID string
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
	Stock         int64
	IMEI          string // optional; phones are often tracked by IMEI
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
