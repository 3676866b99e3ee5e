package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runBearer(t *testing.T, header string) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/projects", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return nil }
	return c, BearerToken()(next)(c)
}

func TestBearerToken_ExtractsToken(t *testing.T) {
	c, err := runBearer(t, "Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := c.Get("token").(string); got != "abc.def.ghi" {
		t.Fatalf("expected token in context, got %q", got)
	}
}

func TestBearerToken_CaseInsensitiveScheme(t *testing.T) {
	c, err := runBearer(t, "bearer tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := c.Get("token").(string); got != "tok" {
		t.Fatalf("expected token in context, got %q", got)
	}
}

func TestBearerToken_MissingHeader(t *testing.T) {
	_, err := runBearer(t, "")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestBearerToken_BadScheme(t *testing.T) {
	_, err := runBearer(t, "Basic dXNlcjpwYXNz")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestBearerToken_EmptyToken(t *testing.T) {
	_, err := runBearer(t, "Bearer ")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
