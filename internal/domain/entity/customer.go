package entity

import "time"

// Customer is a walk-in or regular customer of the shop.
type Customer struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
