package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateServiceRequest body for POST /api/services (also used for updates).
type CreateServiceRequest struct {
	CustomerID    string           `json:"customerId"`
	Device        string           `json:"device"`
	Issue         string           `json:"issue"`
	Status        string           `json:"status"`
	EstimatedCost *decimal.Decimal `json:"estimatedCost"`
	FinalCost     *decimal.Decimal `json:"finalCost"`
}

// ServiceResponse service ticket with the customer resolved.
type ServiceResponse struct {
	ID            string           `json:"_id"`
	Customer      *BillCustomerRef `json:"customer,omitempty"`
	Device        string           `json:"device"`
	Issue         string           `json:"issue"`
	Status        string           `json:"status"`
	EstimatedCost *decimal.Decimal `json:"estimatedCost,omitempty"`
	FinalCost     *decimal.Decimal `json:"finalCost,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
}
