package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/mobileshop/pos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo read-only dashboard aggregates over PostgreSQL.
type StatsRepo struct {
	q Querier
}

func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// SalesTotalBetween sums bill totals with created_at in [from, to).
func (r *StatsRepo) SalesTotalBetween(from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(total), 0) FROM bills WHERE created_at >= $1 AND created_at < $2`,
		from, to,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sales total: %w", err)
	}
	return total, nil
}

func (r *StatsRepo) CountBills() (int64, error) {
	return r.count(`SELECT COUNT(*) FROM bills`)
}

func (r *StatsRepo) CountServicesByStatus(status string) (int64, error) {
	return r.count(`SELECT COUNT(*) FROM service_tickets WHERE status = $1`, status)
}

func (r *StatsRepo) CountProductsAtOrBelowStock(threshold int64) (int64, error) {
	return r.count(`SELECT COUNT(*) FROM products WHERE stock <= $1`, threshold)
}

func (r *StatsRepo) count(query string, args ...any) (int64, error) {
	var n int64
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}
