package domain

import (
	"time"
)

// User is the canonical identity aggregate for the lost-and-found backend.
// Email and Name are each globally unique; uniqueness is enforced by the
// storage layer so concurrent registrations cannot both succeed.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
