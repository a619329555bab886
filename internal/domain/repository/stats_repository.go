package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatsRepository aggregates read-only dashboard figures.
type StatsRepository interface {
	// SalesTotalBetween sums bill totals with created_at in [from, to).
	SalesTotalBetween(from, to time.Time) (decimal.Decimal, error)
	CountBills() (int64, error)
	CountServicesByStatus(status string) (int64, error)
	CountProductsAtOrBelowStock(threshold int64) (int64, error)
}
