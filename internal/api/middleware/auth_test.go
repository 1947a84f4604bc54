package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eladcrm/crm-api/internal/core/domain"
	"github.com/eladcrm/crm-api/internal/core/service"
)

type stubUserRepo struct {
	users map[int64]*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) { return u, nil }

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) { return nil, nil }
func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	return nil
}
func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	delete(r.users, id)
	return nil
}

func gateFixture() (*service.TokenService, *stubUserRepo, *domain.User) {
	user := &domain.User{ID: 5, Name: "Alice", Email: "alice@example.com", Role: domain.RoleAdmin}
	repo := &stubUserRepo{users: map[int64]*domain.User{user.ID: user}}
	tokens := service.NewTokenService("secret", time.Hour)
	return tokens, repo, user
}

func runGate(t *testing.T, tokens *service.TokenService, repo *stubUserRepo, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(tokens, repo)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestAuth_ValidToken(t *testing.T) {
	tokens, repo, user := gateFixture()
	token, _, err := tokens.Issue(user)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(tokens, repo)(func(c echo.Context) error {
		identity, ok := c.Get(IdentityKey).(domain.Identity)
		if !ok {
			t.Fatalf("identity not attached")
		}
		if identity.ID != 5 || identity.Role != domain.RoleAdmin || identity.Email != "alice@example.com" {
			t.Fatalf("unexpected identity: %+v", identity)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	tokens, repo, _ := gateFixture()

	rec, called := runGate(t, tokens, repo, "")
	if called {
		t.Fatalf("next should not run without a credential")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	tokens, repo, _ := gateFixture()

	for _, header := range []string{"bogus", "Basic abc123", "Bearer"} {
		rec, called := runGate(t, tokens, repo, header)
		if called {
			t.Fatalf("next should not run for header %q", header)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	tokens, repo, _ := gateFixture()

	rec, called := runGate(t, tokens, repo, "Bearer not-a-token")
	if called {
		t.Fatalf("next should not run for a bad token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_DeletedUserTokenRejected(t *testing.T) {
	tokens, repo, user := gateFixture()
	token, _, err := tokens.Issue(user)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// The token is still valid, but the account is gone.
	_ = repo.Delete(context.Background(), user.ID)

	rec, called := runGate(t, tokens, repo, "Bearer "+token)
	if called {
		t.Fatalf("next should not run for a deleted user")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body := rec.Body.String(); body == "" {
		t.Fatalf("expected error body")
	}
}
