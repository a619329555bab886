package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mobileshop/pos-api/internal/application/dto"
	"github.com/mobileshop/pos-api/internal/domain/entity"
	"github.com/mobileshop/pos-api/internal/domain/repository"
	"github.com/mobileshop/pos-api/pkg/logger"
)

const (
	dashboardCacheKey = "dashboard:stats"
	dashboardCacheTTL = 30 * time.Second

	dashboardLowStockThreshold = 5
)

// StatsCache is the byte-level cache port the dashboard reads through. Cache
// failures are logged and ignored; the dashboard always answers.
type StatsCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// DashboardUseCase computes the headline figures for the dashboard screen.
type DashboardUseCase struct {
	stats repository.StatsRepository
	cache StatsCache
	log   *logger.Logger
	now   func() time.Time
}

func NewDashboardUseCase(stats repository.StatsRepository, cache StatsCache, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{stats: stats, cache: cache, log: log, now: time.Now}
}

// Stats returns today's sales, this month's sales, the bill count, pending
// service tickets and low-stock product count. Served from cache when fresh.
func (uc *DashboardUseCase) Stats(ctx context.Context) (*dto.DashboardResponse, error) {
	if cached, ok, err := uc.cache.Get(ctx, dashboardCacheKey); err != nil {
		uc.log.Warn().Err(err).Msg("dashboard cache read failed")
	} else if ok {
		var resp dto.DashboardResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			return &resp, nil
		}
		uc.log.Warn().Msg("dashboard cache entry corrupt, recomputing")
	}

	now := uc.now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	todaySales, err := uc.stats.SalesTotalBetween(dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	monthlySales, err := uc.stats.SalesTotalBetween(monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}
	billCount, err := uc.stats.CountBills()
	if err != nil {
		return nil, err
	}
	pending, err := uc.stats.CountServicesByStatus(entity.ServiceStatusPending)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.stats.CountProductsAtOrBelowStock(dashboardLowStockThreshold)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		TodaySales:       todaySales.Round(2),
		MonthlySales:     monthlySales.Round(2),
		TotalBillsCount:  billCount,
		PendingServices:  pending,
		LowStockProducts: lowStock,
	}

	if payload, err := json.Marshal(resp); err == nil {
		if err := uc.cache.Set(ctx, dashboardCacheKey, payload, dashboardCacheTTL); err != nil {
			uc.log.Warn().Err(err).Msg("dashboard cache write failed")
		}
	}
	return resp, nil
}
