package entity

import "time"

// Category is a flat product category (phones, accessories, spares...).
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
