package dto

import "time"

// CreateCustomerRequest body for POST /api/customers (also used for updates).
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// CustomerResponse customer in responses.
type CustomerResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateDistributorRequest body for POST /api/distributors.
type CreateDistributorRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	VatNumber string `json:"vatNumber"`
}

// DistributorResponse distributor in responses.
type DistributorResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	VatNumber string    `json:"vatNumber,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateCategoryRequest body for POST /api/categories.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse category in responses.
type CategoryResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreatePaymentMethodRequest body for POST /api/payment-methods.
type CreatePaymentMethodRequest struct {
	Name      string `json:"name"`
	SortOrder *int   `json:"order"`
}

// PaymentMethodResponse payment method in responses.
type PaymentMethodResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
}
