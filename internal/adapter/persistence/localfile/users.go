package localfile

import (
	"time"

	"orcafacil/internal/domain/entities"
)

// storedUser is the on-disk user shape. entities.User hides the password
// hash from JSON, so persistence needs its own record.
type storedUser struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

func toStoredUser(u entities.User) storedUser {
	return storedUser{ID: u.ID, Email: u.Email, PasswordHash: u.PasswordHash, CreatedAt: u.CreatedAt}
}

func (u storedUser) toEntity() entities.User {
	return entities.User{ID: u.ID, Email: u.Email, PasswordHash: u.PasswordHash, CreatedAt: u.CreatedAt}
}
