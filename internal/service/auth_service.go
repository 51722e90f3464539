package service

import (
	"context"
	"fmt"
	"strconv"

	"donation-api/internal/core/auth"
	"donation-api/internal/domain"
	"donation-api/pkg/utils"
)

// AuthService authenticates the admin principal and issues bearer tokens.
// It never logs usernames, hashes or password validity.
type AuthService struct {
	admins domain.AdminRepository
	jwter  *auth.JWTer
}

func NewAuthService(admins domain.AdminRepository, jwter *auth.JWTer) *AuthService {
	return &AuthService{admins: admins, jwter: jwter}
}

// Login verifies the password against the stored bcrypt hash and returns a
// signed token embedding {id, username}. Unknown username and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	a, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("find admin: %w", err)
	}
	if a == nil || !utils.CheckPassword(password, a.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	token, err := s.jwter.Issue(strconv.FormatUint(uint64(a.ID), 10), a.Username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// ChangePassword re-verifies the current password before replacing the
// stored hash. The minimum-length rule for newPassword lives at the HTTP
// binding; it is not re-checked here.
func (s *AuthService) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	a, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("find admin: %w", err)
	}
	if a == nil {
		return ErrAdminNotFound
	}
	if !utils.CheckPassword(currentPassword, a.PasswordHash) {
		return ErrInvalidCredentials
	}
	if err := s.admins.UpdatePassword(ctx, a.ID, utils.HashPassword(newPassword)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
