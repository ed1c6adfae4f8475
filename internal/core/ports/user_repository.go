package ports

import (
	"context"

	"github.com/userhub/auth-service/internal/core/domain"
)

// UserRepository defines the persistence contract the auth core requires.
//
// Lookup methods return domain.ErrUserNotFound when no record matches.
// Create returns domain.ErrUserExists or domain.ErrEmailExists when a
// storage-level uniqueness constraint rejects the insert.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByRefreshToken(ctx context.Context, token string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// UpdateRefreshToken overwrites the stored refresh token for the user.
	// An empty token clears the field.
	UpdateRefreshToken(ctx context.Context, userID, token string) error
}
