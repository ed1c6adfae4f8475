package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/userhub/auth-service/internal/core/domain"
)

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{domain.ErrMissingFields, http.StatusBadRequest, MsgMissingFields},
		{domain.ErrEmptyField, http.StatusBadRequest, MsgEmptyField},
		{domain.ErrInvalidEmail, http.StatusBadRequest, MsgInvalidEmail},
		{domain.ErrUserExists, http.StatusBadRequest, MsgUserExists},
		{domain.ErrEmailExists, http.StatusBadRequest, MsgEmailExists},
		{domain.ErrUserNotFound, http.StatusBadRequest, MsgUserNotFound},
		{domain.ErrBadPassword, http.StatusBadRequest, MsgBadPassword},
		{domain.ErrMissingRefreshToken, http.StatusBadRequest, MsgMissingRefreshToken},
		{domain.ErrUnknownRefreshToken, http.StatusBadRequest, MsgUnknownRefreshToken},
		{domain.ErrInvalidToken, http.StatusUnauthorized, "invalid token"},
	}

	e := echo.New()
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			want := `{"error":"` + tc.message + `"}` + "\n"
			if rec.Body.String() != want {
				t.Fatalf("expected %q, got %q", want, rec.Body.String())
			}
		})
	}
}

func TestErrorHandler_WrappedErrorStillMaps(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	wrapped := errors.Join(errors.New("context"), domain.ErrUserExists)
	NewHTTPErrorHandler(zerolog.Nop())(wrapped, c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("mongo exploded"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	want := `{"error":"internal server error"}` + "\n"
	if rec.Body.String() != want {
		t.Fatalf("details leaked: %q", rec.Body.String())
	}
}
