package entity

import "time"

// User is the shop administrator. The system is single-admin: the row is
// created by cmd/seed, never through the API.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
