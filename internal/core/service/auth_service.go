package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/eladcrm/crm-api/internal/core/domain"
	"github.com/eladcrm/crm-api/internal/core/ports"
)

// dummyHash is compared against when the email is unknown, so the not-found
// path costs the same as a real bcrypt comparison.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService implements login, user management and the bootstrap admin.
type AuthService struct {
	users    ports.UserRepository
	tokens   ports.TokenService
	throttle ports.LoginThrottle
}

// NewAuthService wires the credential store, token service and an optional
// login throttle (nil disables throttling).
func NewAuthService(users ports.UserRepository, tokens ports.TokenService, throttle ports.LoginThrottle) *AuthService {
	return &AuthService{users: users, tokens: tokens, throttle: throttle}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrBadCredentials
	}

	if s.throttle != nil {
		ok, err := s.throttle.Allow(ctx, email)
		if err != nil {
			return "", nil, err
		}
		if !ok {
			return "", nil, domain.ErrTooManyLoginAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Burn a comparison so unknown emails are indistinguishable from
			// wrong passwords, in shape and in timing.
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			s.recordFailure(ctx, email)
			return "", nil, domain.ErrBadCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return "", nil, domain.ErrBadCredentials
	}

	if s.throttle != nil {
		_ = s.throttle.Reset(ctx, email)
	}

	token, _, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.throttle != nil {
		_ = s.throttle.Failure(ctx, email)
	}
}

func (s *AuthService) CreateUser(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if !domain.ValidRole(in.Role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        normalizeEmail(in.Email),
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.users.Create(ctx, user)
}

func (s *AuthService) UpdateUser(ctx context.Context, id int64, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		user.Name = strings.TrimSpace(in.Name)
	}
	if in.Role != "" {
		if !domain.ValidRole(in.Role) {
			return nil, domain.ErrInvalidRole
		}
		user.Role = in.Role
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) DeleteUser(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}

func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// EnsureAdmin creates the bootstrap admin account when absent. A concurrent
// creation losing the uniqueness race is treated as success.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	email = normalizeEmail(email)

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	_, err = s.CreateUser(ctx, ports.CreateUserInput{
		Name:     "Admin",
		Email:    email,
		Password: password,
		Role:     domain.RoleAdmin,
	})
	if errors.Is(err, domain.ErrDuplicateEmail) {
		return nil
	}
	return err
}
