package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/eladcrm/crm-api/internal/core/domain"
	"github.com/eladcrm/crm-api/internal/core/ports"
)

type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = r.nextID
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubThrottle struct {
	failures int
	resets   int
	blocked  bool
}

func (t *stubThrottle) Allow(context.Context, string) (bool, error) { return !t.blocked, nil }
func (t *stubThrottle) Failure(context.Context, string) error       { t.failures++; return nil }
func (t *stubThrottle) Reset(context.Context, string) error         { t.resets++; return nil }

func newTestAuthService(repo ports.UserRepository, throttle ports.LoginThrottle) *AuthService {
	return NewAuthService(repo, NewTokenService("secret", time.Hour), throttle)
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, nil)

	created, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Name: "Carol", Email: "Carol@Example.com", Password: "s3cretpass", Role: domain.RoleAccountant,
	})
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if created.Email != "carol@example.com" {
		t.Fatalf("email not normalized: %s", created.Email)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cretpass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.Name != "Carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := NewTokenService("secret", time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != domain.RoleAccountant {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, nil)

	_, _ = svc.CreateUser(context.Background(), ports.CreateUserInput{
		Name: "Dave", Email: "dave@example.com", Password: "goodpass1", Role: domain.RoleSales,
	})

	_, _, errWrongPass := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, _, errNoUser := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if !errors.Is(errWrongPass, domain.ErrBadCredentials) {
		t.Fatalf("wrong password: expected ErrBadCredentials, got %v", errWrongPass)
	}
	if !errors.Is(errNoUser, domain.ErrBadCredentials) {
		t.Fatalf("unknown email: expected ErrBadCredentials, got %v", errNoUser)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	throttle := &stubThrottle{blocked: true}
	svc := newTestAuthService(repo, throttle)

	if _, _, err := svc.Login(context.Background(), "any@example.com", "pass"); !errors.Is(err, domain.ErrTooManyLoginAttempts) {
		t.Fatalf("expected ErrTooManyLoginAttempts, got %v", err)
	}
}

func TestAuthService_Login_RecordsFailuresAndResets(t *testing.T) {
	repo := newStubUserRepo()
	throttle := &stubThrottle{}
	svc := newTestAuthService(repo, throttle)

	_, _ = svc.CreateUser(context.Background(), ports.CreateUserInput{
		Name: "Erin", Email: "erin@example.com", Password: "goodpass1", Role: domain.RoleSales,
	})

	_, _, _ = svc.Login(context.Background(), "erin@example.com", "badpass")
	_, _, _ = svc.Login(context.Background(), "ghost@example.com", "badpass")
	if throttle.failures != 2 {
		t.Fatalf("expected 2 recorded failures, got %d", throttle.failures)
	}

	if _, _, err := svc.Login(context.Background(), "erin@example.com", "goodpass1"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if throttle.resets != 1 {
		t.Fatalf("expected reset after success, got %d", throttle.resets)
	}
}

func TestAuthService_CreateUser_InvalidRole(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), nil)

	_, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Name: "Bob", Email: "bob@example.com", Password: "password1", Role: "SUPERUSER",
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_CreateUser_DuplicateEmail(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), nil)

	_, _ = svc.CreateUser(context.Background(), ports.CreateUserInput{
		Name: "Bob", Email: "bob@example.com", Password: "password1", Role: domain.RoleSales,
	})
	_, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Name: "Bobby", Email: "BOB@example.com", Password: "password2", Role: domain.RoleSales,
	})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthService_CreateUser_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, nil)

	user, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Name: "Alice", Email: "alice@example.com", Password: "pass12345", Role: domain.RoleSales,
	})
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if user.PasswordHash == "pass12345" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass12345")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_EnsureAdmin_Idempotent(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, nil)

	if err := svc.EnsureAdmin(context.Background(), "admin@crm.local", "Admin1234!"); err != nil {
		t.Fatalf("first bootstrap failed: %v", err)
	}
	if err := svc.EnsureAdmin(context.Background(), "admin@crm.local", "Admin1234!"); err != nil {
		t.Fatalf("second bootstrap failed: %v", err)
	}

	admins := 0
	for _, u := range repo.users {
		if u.Email == "admin@crm.local" {
			admins++
			if u.Role != domain.RoleAdmin {
				t.Fatalf("expected ADMIN role, got %s", u.Role)
			}
		}
	}
	if admins != 1 {
		t.Fatalf("expected exactly one admin row, got %d", admins)
	}
}

func TestAuthService_UpdateUser_RoleAndPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, nil)

	user, _ := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Name: "Frank", Email: "frank@example.com", Password: "password1", Role: domain.RoleSales,
	})

	updated, err := svc.UpdateUser(context.Background(), user.ID, ports.UpdateUserInput{
		Role: domain.RoleManager, Password: "newpass123",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Role != domain.RoleManager {
		t.Fatalf("role not updated: %s", updated.Role)
	}

	if _, _, err := svc.Login(context.Background(), "frank@example.com", "newpass123"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}

	if _, err := svc.UpdateUser(context.Background(), user.ID, ports.UpdateUserInput{Role: "NOPE"}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}
