package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillItemRequest is one requested cart line. Quantity and Discount are
// pointers so a missing field can be told apart from an explicit zero.
type BillItemRequest struct {
	ProductID string           `json:"productId"`
	Quantity  *int64           `json:"quantity"`
	Discount  *decimal.Decimal `json:"discount"`
}

// CreateBillRequest body for POST /api/bills.
type CreateBillRequest struct {
	Items           []BillItemRequest `json:"items"`
	WithVat         bool              `json:"withVat"`
	WholeDiscount   decimal.Decimal   `json:"wholeDiscount"`
	CustomerID      string            `json:"customerId"`
	PaymentMethodID string            `json:"paymentMethodId"`
}

// BillCustomerRef is the customer block embedded in bill responses.
type BillCustomerRef struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// BillItemResponse one bill line with its creation-time snapshots.
type BillItemResponse struct {
	Product   string          `json:"product"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
}

// BillResponse is the persisted bill wire shape. Field names match the
// contract the web UI was built against.
type BillResponse struct {
	ID            string             `json:"_id"`
	BillNumber    string             `json:"billNumber"`
	Customer      *BillCustomerRef   `json:"customer,omitempty"`
	PaymentMethod *NameRef           `json:"paymentMethod,omitempty"`
	Items         []BillItemResponse `json:"items"`
	WithVat       bool               `json:"withVat"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	WholeDiscount decimal.Decimal    `json:"wholeDiscount"`
	VatRate       decimal.Decimal    `json:"vatRate"`
	VatAmount     decimal.Decimal    `json:"vatAmount"`
	Total         decimal.Decimal    `json:"total"`
	CreatedAt     time.Time          `json:"createdAt"`
}
