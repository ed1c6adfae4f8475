package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/userhub/auth-service/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// Wire messages are part of the HTTP contract and must stay byte-stable.
const (
	MsgMissingFields       = "The request body does not contain all the required fields"
	MsgEmptyField          = "The request body contains one or more empty fields"
	MsgInvalidEmail        = "The email in the request body is not a valid email"
	MsgUserExists          = "The user in the request body identifies an already existing user"
	MsgEmailExists         = "The email in the request body identifies an already existing user"
	MsgUserNotFound        = "The user in the request body does not identify a user in the database"
	MsgBadPassword         = "The supplied password does not match with the one in the database"
	MsgMissingRefreshToken = "The request does not have a refresh token in the cookies"
	MsgUnknownRefreshToken = "The refresh token in the request's cookies does not represent a user in the database"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their wire-stable messages and status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Client-input errors in the auth protocol are all HTTP 400.
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest, MsgMissingFields
	case errors.Is(err, domain.ErrEmptyField):
		return http.StatusBadRequest, MsgEmptyField
	case errors.Is(err, domain.ErrInvalidEmail):
		return http.StatusBadRequest, MsgInvalidEmail
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, MsgUserExists
	case errors.Is(err, domain.ErrEmailExists):
		return http.StatusBadRequest, MsgEmailExists
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusBadRequest, MsgUserNotFound
	case errors.Is(err, domain.ErrBadPassword):
		return http.StatusBadRequest, MsgBadPassword
	case errors.Is(err, domain.ErrMissingRefreshToken):
		return http.StatusBadRequest, MsgMissingRefreshToken
	case errors.Is(err, domain.ErrUnknownRefreshToken):
		return http.StatusBadRequest, MsgUnknownRefreshToken
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid token"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
