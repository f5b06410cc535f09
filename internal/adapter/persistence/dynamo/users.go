package dynamo

import (
	"context"
	"strings"

	"orcafacil/internal/domain/entities"
)

func (s *StorageService) SaveUser(ctx context.Context, user entities.User) (entities.User, error) {
	id, err := s.nextID(ctx, "users")
	if err != nil {
		return entities.User{}, err
	}
	user.ID = id
	if err := s.putNew(ctx, s.usersTable, toUserRecord(user)); err != nil {
		return entities.User{}, err
	}
	return user, nil
}

// GetUserByEmail scans the users table. The account collection is tiny; an
// email GSI would only pay off at a scale this service does not target.
func (s *StorageService) GetUserByEmail(ctx context.Context, email string) (entities.User, error) {
	records, err := scanAll[userRecord](ctx, s, s.usersTable)
	if err != nil {
		return entities.User{}, err
	}
	for _, r := range records {
		if strings.EqualFold(r.Email, email) {
			return r.toEntity(), nil
		}
	}
	return entities.User{}, nil
}
