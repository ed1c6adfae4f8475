package domain

import (
	"errors"
	"time"
)

// Role values are fixed at registration and never change afterwards.
const (
	RoleRegular = "regular"
	RoleAdmin   = "admin"
)

var (
	ErrMissingFields       = errors.New("missing required fields")
	ErrEmptyField          = errors.New("empty field in request body")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrUserExists          = errors.New("username already taken")
	ErrEmailExists         = errors.New("email already registered")
	ErrUserNotFound        = errors.New("user not found")
	ErrBadPassword         = errors.New("password mismatch")
	ErrMissingRefreshToken = errors.New("missing refresh token")
	ErrUnknownRefreshToken = errors.New("unknown refresh token")
	ErrInvalidToken        = errors.New("invalid token")
)

// User models an authenticated account.
//
// RefreshToken holds the raw value of the most recently issued refresh token
// and is set exactly while the user has an active session: written on login,
// overwritten on re-login, cleared on logout.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TokenPair carries the two credentials issued on a successful login.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
