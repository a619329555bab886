package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body for POST /api/products.
type CreateProductRequest struct {
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Distributor   string          `json:"distributor"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	Stock         int64           `json:"stock"`
	IMEI          string          `json:"imei"`
}

// UpdateProductRequest body for PUT /api/products/:id. Nil fields are left as-is.
type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Category      *string          `json:"category"`
	Distributor   *string          `json:"distributor"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
	SellingPrice  *decimal.Decimal `json:"sellingPrice"`
	Stock         *int64           `json:"stock"`
	IMEI          *string          `json:"imei"`
}

// AdjustStockRequest body for PUT /api/products/stock. Quantity is a signed
// delta; the resulting stock is clamped at zero.
type AdjustStockRequest struct {
	ProductID string `json:"productId"`
	Quantity  *int64 `json:"quantity"`
}

// ProductResponse product with category/distributor names resolved.
type ProductResponse struct {
	ID            string          `json:"_id"`
	Name          string          `json:"name"`
	Category      *NameRef        `json:"category"`
	Distributor   *NameRef        `json:"distributor"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	Stock         int64           `json:"stock"`
	IMEI          string          `json:"imei,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ImportResult summary of a CSV product import.
type ImportResult struct {
	Imported int       `json:"imported"`
	Errors   []string  `json:"errors,omitempty"`
	Created  []NameRef `json:"created"`
}
