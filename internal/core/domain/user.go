package domain

import "time"

// User represents a user of the application in the domain.
type User struct {
	UserID       string    `json:"userID"` // Primary key (UUID)
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
