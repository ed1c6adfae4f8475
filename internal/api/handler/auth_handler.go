package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/userhub/auth-service/internal/api/metrics"
	"github.com/userhub/auth-service/internal/core/domain"
	"github.com/userhub/auth-service/internal/core/ports"
)

const (
	accessCookie  = "accessToken"
	refreshCookie = "refreshToken"
)

// AuthHandler binds the auth protocol to HTTP: request decoding, cookie
// handling, and the {data}/{error} response envelope. Business rules live in
// the service; every error is surfaced through the central error handler.
type AuthHandler struct {
	authService ports.AuthService
	accessTTL   time.Duration
	refreshTTL  time.Duration
}

func NewAuthHandler(authService ports.AuthService, accessTTL, refreshTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		accessTTL:   accessTTL,
		refreshTTL:  refreshTTL,
	}
}

// Fields are pointers so the validator can tell a missing key from an empty
// value; precedence between the two is part of the contract.
type registerRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type loginRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type dataResponse struct {
	Data any `json:"data"`
}

type messageBody struct {
	Message string `json:"message"`
}

// Register creates a regular user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  dataResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	return h.register(c, domain.RoleRegular)
}

// RegisterAdmin creates an admin account.
//
// @Summary      Register a new admin
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Admin registration details"
// @Success      200   {object}  dataResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/admin [post]
func (h *AuthHandler) RegisterAdmin(c echo.Context) error {
	return h.register(c, domain.RoleAdmin)
}

func (h *AuthHandler) register(c echo.Context, role string) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	in := ports.RegisterInput{Username: req.Username, Email: req.Email, Password: req.Password}

	var err error
	label := "User"
	if role == domain.RoleAdmin {
		label = "Admin"
		_, err = h.authService.RegisterAdmin(c.Request().Context(), in)
	} else {
		_, err = h.authService.Register(c.Request().Context(), in)
	}
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(role, "error").Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(role, "ok").Inc()
	return c.JSON(http.StatusOK, dataResponse{Data: messageBody{Message: label + " added successfully"}})
}

// Login authenticates a user and issues the access/refresh token pair, both
// in the JSON body and as cookies.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  dataResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	pair, _, err := h.authService.Login(c.Request().Context(), ports.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	h.setAuthCookies(c, pair)
	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, dataResponse{Data: pair})
}

// Logout invalidates the session identified by the refresh-token cookie and
// clears both auth cookies. The request carries no body.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dataResponse
// @Failure      400  {object}  map[string]string
// @Router       /api/logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie, err := c.Cookie(refreshCookie)
	if err != nil || cookie.Value == "" {
		metrics.LogoutsTotal.WithLabelValues("error").Inc()
		return domain.ErrMissingRefreshToken
	}

	if err := h.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
		metrics.LogoutsTotal.WithLabelValues("error").Inc()
		return err
	}

	h.clearAuthCookies(c)
	metrics.LogoutsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, dataResponse{Data: messageBody{Message: "User logged out"}})
}

// Refresh rotates the token pair using the refresh-token cookie.
//
// @Summary      Refresh the token pair
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dataResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/refresh [get]
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(refreshCookie)
	if err != nil || cookie.Value == "" {
		metrics.TokenRefreshesTotal.WithLabelValues("error").Inc()
		return domain.ErrMissingRefreshToken
	}

	pair, err := h.authService.Refresh(c.Request().Context(), cookie.Value)
	if err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("error").Inc()
		return err
	}

	h.setAuthCookies(c, pair)
	metrics.TokenRefreshesTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, dataResponse{Data: pair})
}

// Me returns the identity claims of the authenticated caller. Requires the
// auth middleware.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dataResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Data: profileBody{
		ID:       claims.ID,
		Username: claims.Username,
		Email:    claims.Email,
		Role:     claims.Role,
	}})
}

type profileBody struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// The cookies mirror the tokens' own lifetimes. SameSite=None with Secure
// lets a browser front-end on another origin send them.
func (h *AuthHandler) setAuthCookies(c echo.Context, pair *domain.TokenPair) {
	c.SetCookie(&http.Cookie{
		Name:     accessCookie,
		Value:    pair.AccessToken,
		Path:     "/",
		MaxAge:   int(h.accessTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
	c.SetCookie(&http.Cookie{
		Name:     refreshCookie,
		Value:    pair.RefreshToken,
		Path:     "/",
		MaxAge:   int(h.refreshTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func (h *AuthHandler) clearAuthCookies(c echo.Context) {
	for _, name := range []string{accessCookie, refreshCookie} {
		c.SetCookie(&http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			Expires:  time.Unix(0, 0),
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteNoneMode,
		})
	}
}
