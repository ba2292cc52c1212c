package model

import "time"

// User represents a registered store customer. The admin account is a
// regular user row seeded from configuration with IsAdmin set.
type User struct {
	ID           int64
	FullName     string
	Username     string
	Email        string
	Phone        string
	PasswordHash string
	Gender       string
	IsAdmin      bool
	CreatedAt    time.Time
}
