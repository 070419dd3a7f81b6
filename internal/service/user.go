package service

import (
	"context"
	"errors"
	"strings"

	"neighborlend/internal/core/auth"
	"neighborlend/internal/domain"
	"neighborlend/pkg/apperror"
	"neighborlend/pkg/utils"
)

type LoginResult struct {
	Token string
	IsNew bool
	User  *domain.User
}

type UserService struct {
	users domain.UserRepository
	jwter *auth.JWTer
}

func NewUserService(users domain.UserRepository, jwter *auth.JWTer) *UserService {
	return &UserService{users: users, jwter: jwter}
}

// Login authenticates by email/password. Unknown emails are provisioned on
// the spot — first successful login is registration, mirroring the
// upsert-on-auth lifecycle of the user entity.
func (s *UserService) Login(ctx context.Context, email, password, name string) (*LoginResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	name = strings.TrimSpace(name)

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Internal("load user failed", err)
	}
	if u == nil {
		return s.register(ctx, email, password, name)
	}
	if !utils.CheckPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	tok, err := s.jwter.Issue(u.ID, u.Role)
	if err != nil {
		return nil, apperror.Internal("issue token failed", err)
	}
	return &LoginResult{Token: tok, User: u}, nil
}

func (s *UserService) register(ctx context.Context, email, password, name string) (*LoginResult, error) {
	if name == "" {
		if at := strings.IndexByte(email, '@'); at > 0 {
			name = email[:at]
		} else {
			name = "user"
		}
	}
	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		Name:         name,
		PasswordHash: utils.HashPassword(password),
		Role:         "user",
	}
	if err := s.users.Create(ctx, u); err != nil {
		// Concurrent first login for the same email: fall back to the row
		// that won the race and verify against it.
		if !isDuplicate(err) {
			return nil, apperror.Internal("create user failed", err)
		}
		existing, e := s.users.FindByEmail(ctx, email)
		if e != nil || existing == nil {
			return nil, apperror.Internal("load user failed", e)
		}
		if !utils.CheckPassword(password, existing.PasswordHash) {
			return nil, ErrInvalidCredentials
		}
		u = existing
	}
	tok, err := s.jwter.Issue(u.ID, u.Role)
	if err != nil {
		return nil, apperror.Internal("issue token failed", err)
	}
	return &LoginResult{Token: tok, IsNew: true, User: u}, nil
}

// Profile returns the authenticated user's own record.
func (s *UserService) Profile(ctx context.Context, uid string) (*domain.User, error) {
	if uid == "" {
		return nil, ErrUnauthenticated
	}
	u, err := s.users.FindByID(ctx, uid)
	if err != nil {
		return nil, apperror.Internal("load user failed", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// ListUsers is the admin directory with search, paging and soft-deleted rows.
func (s *UserService) ListUsers(ctx context.Context, q string, offset, limit int, withDeleted bool) ([]domain.User, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.users.List(ctx, q, offset, limit, withDeleted)
}

// Ban soft-deletes a user (admin).
func (s *UserService) Ban(ctx context.Context, id string) error {
	if err := s.users.SoftDelete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrUserNotFound
		}
		return apperror.Internal("ban user failed", err)
	}
	return nil
}

func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation")
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
