package entity

import "time"

// PaymentMethod is a way of paying a bill (cash, card, UPI...).
// SortOrder controls the order the POS screen shows them.
type PaymentMethod struct {
	ID        string
	Name      string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}
