package entity

import "time"

// Distributor is a supplier products are purchased from.
type Distributor struct {
	ID        string
	Name      string
	Phone     string
	Address   string
	VatNumber string
	CreatedAt time.Time
	UpdatedAt time.Time
}
