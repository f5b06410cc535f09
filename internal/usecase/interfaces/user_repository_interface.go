package interfaces

import (
	"context"

	"orcafacil/internal/domain/entities"
)

// IUserRepository persists the accounts behind register/login. A zero-value
// user (ID == 0) means "no such user"; errors are storage failures only.

type IUserRepository interface {
	SaveUser(ctx context.Context, user entities.User) (entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (entities.User, error)
}
