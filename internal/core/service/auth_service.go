package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/userhub/auth-service/internal/core/domain"
	"github.com/userhub/auth-service/internal/core/ports"
	"github.com/userhub/auth-service/internal/core/token"
)

// AuthService orchestrates registration, login, logout, and refresh-token
// rotation on top of the user repository, the password hasher, and the token
// issuer. All failure paths are terminal for the request; no write happens
// before every guard has passed.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens *token.Issuer
	audit  ports.AuditRecorder // optional
	log    zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens *token.Issuer,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		audit:  audit,
		log:    log,
	}
}

// Register creates a regular user account.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.register(ctx, in, domain.RoleRegular)
}

// RegisterAdmin creates an admin account. This is the only path that assigns
// the admin role.
func (s *AuthService) RegisterAdmin(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.register(ctx, in, domain.RoleAdmin)
}

func (s *AuthService) register(ctx context.Context, in ports.RegisterInput, role string) (*domain.User, error) {
	if err := validateRegistration(in); err != nil {
		return nil, err
	}
	username, email, password := *in.Username, *in.Email, *in.Password

	// Pre-checks keep the error specific; the repository's uniqueness
	// constraints remain the authoritative guard against concurrent inserts.
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		s.record(domain.ActionRegister, username, email, false, domain.ErrUserExists.Error())
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		s.record(domain.ActionRegister, username, email, false, domain.ErrEmailExists.Error())
		return nil, domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.record(domain.ActionRegister, username, email, true, "")
	s.log.Info().
		Str("username", username).
		Str("role", role).
		Msg("user registered")

	return created, nil
}

// Login verifies credentials, issues an access/refresh token pair, and
// persists the raw refresh token on the user record, overwriting any value
// left by a previous session.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*domain.TokenPair, *domain.User, error) {
	if err := validateLogin(in); err != nil {
		return nil, nil, err
	}
	email, password := *in.Email, *in.Password

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.record(domain.ActionLogin, "", email, false, domain.ErrUserNotFound.Error())
		}
		return nil, nil, err
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		s.record(domain.ActionLogin, user.Username, email, false, domain.ErrBadPassword.Error())
		return nil, nil, domain.ErrBadPassword
	}

	pair, err := s.tokens.Pair(user)
	if err != nil {
		return nil, nil, err
	}
	if err := s.users.UpdateRefreshToken(ctx, user.ID, pair.RefreshToken); err != nil {
		return nil, nil, err
	}

	s.record(domain.ActionLogin, user.Username, email, true, "")
	s.log.Info().Str("username", user.Username).Msg("user logged in")

	return pair, user, nil
}

// Logout invalidates the session identified by the refresh token. The user
// record itself survives; only the refresh-token field is cleared.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	user, err := s.users.FindByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.record(domain.ActionLogout, "", "", false, domain.ErrUnknownRefreshToken.Error())
			return domain.ErrUnknownRefreshToken
		}
		return err
	}

	if err := s.users.UpdateRefreshToken(ctx, user.ID, ""); err != nil {
		return err
	}

	s.record(domain.ActionLogout, user.Username, user.Email, true, "")
	s.log.Info().Str("username", user.Username).Msg("user logged out")

	return nil
}

// Refresh rotates the token pair: the presented refresh token must verify
// (signature and expiry) and still be the one stored on a user record. The
// rotated refresh token replaces the stored value, invalidating the old one.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	if _, err := s.tokens.Parse(refreshToken); err != nil {
		s.record(domain.ActionRefresh, "", "", false, domain.ErrInvalidToken.Error())
		return nil, err
	}

	user, err := s.users.FindByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.record(domain.ActionRefresh, "", "", false, domain.ErrUnknownRefreshToken.Error())
			return nil, domain.ErrUnknownRefreshToken
		}
		return nil, err
	}

	pair, err := s.tokens.Pair(user)
	if err != nil {
		return nil, err
	}
	if err := s.users.UpdateRefreshToken(ctx, user.ID, pair.RefreshToken); err != nil {
		return nil, err
	}

	s.record(domain.ActionRefresh, user.Username, user.Email, true, "")
	return pair, nil
}

func (s *AuthService) record(action domain.AuthAction, username, email string, success bool, reason string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuthEvent{
		Action:    action,
		Username:  username,
		Email:     email,
		Success:   success,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	})
}
