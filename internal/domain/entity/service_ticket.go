package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service ticket statuses.
const (
	ServiceStatusPending    = "Pending"
	ServiceStatusInProgress = "In Progress"
	ServiceStatusCompleted  = "Completed"
)

// ValidServiceStatus reports whether s is one of the known ticket statuses.
func ValidServiceStatus(s string) bool {
	return s == ServiceStatusPending || s == ServiceStatusInProgress || s == ServiceStatusCompleted
}

// ServiceTicket is a device repair job taken in by the shop.
type ServiceTicket struct {
	ID            string
	CustomerID    string // optional
	Device        string
	Issue         string
	Status        string
	EstimatedCost *decimal.Decimal
	FinalCost     *decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
