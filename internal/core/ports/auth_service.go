package ports

import (
	"context"

	"github.com/userhub/auth-service/internal/core/domain"
)

// RegisterInput is the raw registration payload. Fields are pointers so the
// credential validator can distinguish an absent field from an empty one.
type RegisterInput struct {
	Username *string
	Email    *string
	Password *string
}

// LoginInput is the raw login payload.
type LoginInput struct {
	Email    *string
	Password *string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	RegisterAdmin(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, in LoginInput) (*domain.TokenPair, *domain.User, error)
	Logout(ctx context.Context, refreshToken string) error
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
}
