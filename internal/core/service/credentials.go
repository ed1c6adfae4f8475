package service

import (
	"github.com/go-playground/validator/v10"

	"github.com/userhub/auth-service/internal/core/domain"
	"github.com/userhub/auth-service/internal/core/ports"
)

// syntax is used for the email format check only; the surrounding guard
// chain must report the first failing check across all fields, in order.
var syntax = validator.New()

// validateRegistration checks a registration payload in precedence order:
// missing field, then empty field, then email syntax. Pure function of its
// input; no collaborator is touched before it passes.
func validateRegistration(in ports.RegisterInput) error {
	if in.Username == nil || in.Email == nil || in.Password == nil {
		return domain.ErrMissingFields
	}
	if *in.Username == "" || *in.Email == "" || *in.Password == "" {
		return domain.ErrEmptyField
	}
	return validateEmailSyntax(*in.Email)
}

// validateLogin checks a login payload under the same precedence chain,
// without the username field.
func validateLogin(in ports.LoginInput) error {
	if in.Email == nil || in.Password == nil {
		return domain.ErrMissingFields
	}
	if *in.Email == "" || *in.Password == "" {
		return domain.ErrEmptyField
	}
	return validateEmailSyntax(*in.Email)
}

func validateEmailSyntax(email string) error {
	if err := syntax.Var(email, "email"); err != nil {
		return domain.ErrInvalidEmail
	}
	return nil
}
