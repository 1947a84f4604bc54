package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/eladcrm/crm-api/internal/api/middleware"
	"github.com/eladcrm/crm-api/internal/core/domain"
	"github.com/eladcrm/crm-api/internal/core/ports"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, email, password string) (string, *domain.User, error)
	listFn  func(ctx context.Context) ([]domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) CreateUser(context.Context, ports.CreateUserInput) (*domain.User, error) {
	return nil, nil
}

func (s *stubAuthService) UpdateUser(context.Context, int64, ports.UpdateUserInput) (*domain.User, error) {
	return nil, nil
}

func (s *stubAuthService) DeleteUser(context.Context, int64) error { return nil }

func (s *stubAuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *stubAuthService) EnsureAdmin(context.Context, string, string) error { return nil }

func newLoginContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			if email != "admin@crm.local" || password != "Admin1234!" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return "signed-token", &domain.User{ID: 1, Name: "Admin", Email: email, Role: domain.RoleAdmin}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newLoginContext(e, `{"email":"admin@crm.local","password":"Admin1234!"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "signed-token" {
		t.Fatalf("token missing from response: %+v", resp)
	}

	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["role"] != domain.RoleAdmin {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash leaked into response")
	}
}

func TestAuthHandler_Login_BadCredentialsPropagated(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrBadCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newLoginContext(e, `{"email":"admin@crm.local","password":"wrong"}`)
	err := handler.Login(c)
	if !errors.Is(err, domain.ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			t.Fatalf("service should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	for _, body := range []string{`{}`, `{"email":"admin@crm.local"}`, `{"password":"x"}`, `{"email":"not-an-email","password":"x"}`} {
		c, _ := newLoginContext(e, body)
		err := handler.Login(c)

		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %v", body, err)
		}
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := echo.New()
	handler := NewAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.IdentityKey, domain.Identity{ID: 3, Name: "Rep", Email: "rep@example.com", Role: domain.RoleSales})

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, _ := resp["user"].(map[string]any)
	if user["email"] != "rep@example.com" {
		t.Fatalf("unexpected identity: %+v", resp)
	}
}

func TestAuthHandler_Me_NoIdentity(t *testing.T) {
	e := echo.New()
	handler := NewAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Me(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
