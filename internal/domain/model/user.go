package model

import "time"

// User represents a registered customer of the fuel delivery service.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
