package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Mayursuryawanshi23/CodeX-backend/internal/core/domain"
)

type stubAuthService struct {
	signUpFn  func(ctx context.Context, email, password, name string) (*domain.User, error)
	loginFn   func(ctx context.Context, email, password string) (string, *domain.User, error)
	getUserFn func(ctx context.Context, token string) (*domain.User, error)
}

func (s *stubAuthService) SignUp(ctx context.Context, email, password, name string) (*domain.User, error) {
	return s.signUpFn(ctx, email, password, name)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) GetUser(ctx context.Context, token string) (*domain.User, error) {
	return s.getUserFn(ctx, token)
}

func newAuthContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_SignUp_Success(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, email, password, name string) (*domain.User, error) {
			if email != "alice@example.com" || password != "secret" || name != "Alice" {
				t.Fatalf("unexpected args: %s %s %s", email, password, name)
			}
			return &domain.User{ID: "user_1", Email: email, Name: name}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/signup",
		`{"email":"alice@example.com","password":"secret","name":"Alice"}`)

	if err := h.SignUp(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true || resp["user_id"] != "user_1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_SignUp_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, email, password, name string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newAuthContext(t, http.MethodPost, "/auth/signup", "not-json")

	err := h.SignUp(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_SignUp_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, email, password, name string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newAuthContext(t, http.MethodPost, "/auth/signup", `{"email":"alice@example.com"}`)

	err := h.SignUp(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_SignUp_EmailRegistered(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, email, password, name string) (*domain.User, error) {
			return nil, domain.ErrEmailRegistered
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newAuthContext(t, http.MethodPost, "/auth/signup",
		`{"email":"bob@example.com","password":"x","name":"Bob"}`)

	// Domain errors pass through to the central error handler.
	if err := h.SignUp(c); !errors.Is(err, domain.ErrEmailRegistered) {
		t.Fatalf("expected ErrEmailRegistered passthrough, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	now := time.Now().UTC()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "tok123", &domain.User{ID: "user_1", Email: email, Name: "Alice", CreatedAt: now, LastActiveAt: now}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"secret"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "tok123" {
		t.Fatalf("expected token in response, got %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["id"] != "user_1" || user["email"] != "alice@example.com" {
		t.Fatalf("unexpected user payload: %+v", resp)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	stub := &stubAuthService{
		getUserFn: func(ctx context.Context, token string) (*domain.User, error) {
			if token != "tok123" {
				t.Fatalf("unexpected token: %q", token)
			}
			return &domain.User{ID: "user_1", Email: "alice@example.com", Name: "Alice"}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodGet, "/auth/me", "")
	c.Set("token", "tok123")

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Me_MissingToken(t *testing.T) {
	stub := &stubAuthService{
		getUserFn: func(ctx context.Context, token string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newAuthContext(t, http.MethodGet, "/auth/me", "")

	err := h.Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
