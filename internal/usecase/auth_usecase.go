package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"orcafacil/internal/domain/entities"
	"orcafacil/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidEmail       = errors.New("invalid email")
	ErrWeakPassword       = errors.New("password too short")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const minPasswordLen = 8

// IAuthUseCase exposes the account operations behind the login screen.

type IAuthUseCase interface {
	Register(ctx context.Context, email, password string) (entities.User, error)
	Login(ctx context.Context, email, password string) (string, entities.User, error)
}

type AuthUseCase struct {
	users    interfaces.IUserRepository
	secret   []byte
	tokenTTL time.Duration
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, secret []byte, tokenTTL time.Duration) *AuthUseCase {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthUseCase{users: users, secret: secret, tokenTTL: tokenTTL}
}

func (u *AuthUseCase) Register(ctx context.Context, email, password string) (entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return entities.User{}, ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return entities.User{}, ErrWeakPassword
	}

	if existing, err := u.users.GetUserByEmail(ctx, email); err != nil {
		return entities.User{}, err
	} else if existing.ID != 0 {
		return entities.User{}, ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	return u.users.SaveUser(ctx, entities.User{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
}

// Login verifies the credentials and returns a signed bearer token.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (string, entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", entities.User{}, ErrInvalidCredentials
	}

	user, err := u.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", entities.User{}, err
	}
	if user.ID == 0 {
		return "", entities.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", entities.User{}, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(u.tokenTTL).Unix(),
	})
	signed, err := token.SignedString(u.secret)
	if err != nil {
		return "", entities.User{}, err
	}
	return signed, user, nil
}
