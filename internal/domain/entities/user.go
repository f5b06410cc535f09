package entities

import "time"

// User is an account allowed to issue budgets. Budget.CreatedBy points at
// User.ID. PasswordHash is a bcrypt hash and never leaves the service.

type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
