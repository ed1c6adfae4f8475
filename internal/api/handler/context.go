package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhub/auth-service/internal/api/middleware"
	"github.com/userhub/auth-service/internal/core/token"
)

// ctxClaims extracts the identity claims injected by the auth middleware and
// fast-fails when a route was wired without it.
func ctxClaims(c echo.Context) (*token.Claims, error) {
	claims, _ := c.Get(middleware.ClaimsKey).(*token.Claims)
	if claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
