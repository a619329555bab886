package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill is an immutable record of a completed sale. There is no update or
// delete operation: once created, totals and item snapshots never change.
type Bill struct {
	ID              string
	BillNumber      string // B + YYYYMMDD + zero-padded sequence, unique
	CustomerID      string // empty when the sale had no customer attached
	PaymentMethodID string // empty when not recorded
	WithVat         bool
	Subtotal        decimal.Decimal
	WholeDiscount   decimal.Decimal
	VatRate         decimal.Decimal // percentage captured at creation time
	VatAmount       decimal.Decimal
	Total           decimal.Decimal
	CreatedAt       time.Time
}

// BillItem is one line of a bill. Name and UnitPrice are snapshots taken at
// creation time so later product renames or reprices never touch old bills.
type BillItem struct {
	BillID    string
	ProductID string
	Name      string
	Quantity  int64
	UnitPrice decimal.Decimal
	Discount  decimal.Decimal
	Total     decimal.Decimal
}
