package dto

import "github.com/shopspring/decimal"

// DashboardResponse headline figures for the dashboard screen.
// Money is rounded to two decimals for display.
type DashboardResponse struct {
	TodaySales       decimal.Decimal `json:"todaySales"`
	MonthlySales     decimal.Decimal `json:"monthlySales"`
	TotalBillsCount  int64           `json:"totalBillsCount"`
	PendingServices  int64           `json:"pendingServices"`
	LowStockProducts int64           `json:"lowStockProducts"`
}
