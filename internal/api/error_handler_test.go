package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Mayursuryawanshi23/CodeX-backend/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, failureResponse) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp failureResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, resp
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"missing credentials", domain.ErrMissingCredentials, http.StatusBadRequest},
		{"name required", domain.ErrNameRequired, http.StatusBadRequest},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized},
		{"invalid password", domain.ErrInvalidPassword, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"project not found", domain.ErrProjectNotFound, http.StatusNotFound},
		{"email registered", domain.ErrEmailRegistered, http.StatusConflict},
		{"too many attempts", domain.ErrTooManyAttempts, http.StatusTooManyRequests},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, resp := renderError(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if resp.Success {
				t.Fatal("failure envelope must report success=false")
			}
			if resp.Msg == "" {
				t.Fatal("failure envelope must carry a message")
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("saving project"), domain.ErrForbidden)

	code, resp := renderError(t, wrapped)
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
	if resp.Success {
		t.Fatal("expected success=false")
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	code, resp := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if resp.Msg != "invalid payload" {
		t.Fatalf("expected echo message passthrough, got %q", resp.Msg)
	}
}

func TestHTTPErrorHandler_UnknownError(t *testing.T) {
	code, resp := renderError(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if resp.Msg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", resp.Msg)
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := c.NoContent(http.StatusNoContent); err != nil {
		t.Fatalf("priming response: %v", err)
	}

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrForbidden, c)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("committed response must not be rewritten, got %d", rec.Code)
	}
}
