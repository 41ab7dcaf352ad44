// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/digital-mary/catalog/internal/platform/apperr"
	"github.com/digital-mary/catalog/internal/platform/constants"
	"github.com/digital-mary/catalog/internal/platform/sec"
	"github.com/digital-mary/catalog/internal/platform/validate"
	"github.com/digital-mary/catalog/pkg/uuidv7"
)

// refreshTokenBytes is the entropy of an opaque refresh token (hex-encoded
// to twice this many characters).
const refreshTokenBytes = 32

// TokenProvider defines the contract for generating signed access tokens.
type TokenProvider interface {
	GenerateAccessToken(userID, username, role string, timeToLive time.Duration) (string, error)
}

// Service implements the curator authentication use cases.
type Service struct {
	curators CuratorRepository
	tokens   RefreshTokenRepository
	provider TokenProvider
}

func NewService(curators CuratorRepository, tokens RefreshTokenRepository, provider TokenProvider) *Service {
	return &Service{
		curators: curators,
		tokens:   tokens,
		provider: provider,
	}
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session represents a successfully established curator session.
type Session struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	Curator               *Curator  `json:"curator"`
}

// Login verifies credentials and issues a token pair. Failures are reported
// with one generic message to prevent account enumeration.
func (service *Service) Login(ctx context.Context, input LoginInput) (*Session, error) {
	v := &validate.Validator{}
	v.Required("email", input.Email).Required("password", input.Password)
	if err := v.Err(); err != nil {
		return nil, err
	}

	curator, err := service.curators.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}
	if !curator.IsActive {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// Constant-time comparison inside bcrypt guards against timing attacks.
	if !sec.CheckPasswordHash(input.Password, curator.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	return service.issueSession(ctx, curator)
}

// RefreshSession rotates a refresh token: the presented token is deleted
// before the replacement is stored, so a replayed token fails.
func (service *Service) RefreshSession(ctx context.Context, refreshToken string) (*Session, error) {
	curatorID, err := service.tokens.Get(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if err := service.tokens.Delete(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("auth_service_refresh_rotate_failed: %w", err)
	}

	curator, err := service.curators.FindByID(ctx, curatorID)
	if err != nil || !curator.IsActive {
		return nil, apperr.Unauthorized("Account not found or suspended")
	}

	return service.issueSession(ctx, curator)
}

// Logout revokes the presented refresh token. A token that is already gone
// still counts as a successful logout.
func (service *Service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return service.tokens.Delete(ctx, refreshToken)
}

// # Account Provisioning

// CreateInput holds the data to enroll a curation-team account.
type CreateInput struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
	Role        string `json:"role"`
}

// CreateCurator provisions an account. Admin only; there is no public
// registration path.
func (service *Service) CreateCurator(ctx context.Context, input CreateInput) (*Curator, error) {
	v := &validate.Validator{}
	v.Required("email", input.Email).Email("email", input.Email)
	v.Required("display_name", input.DisplayName).MaxLen("display_name", input.DisplayName, 255)
	v.Required("password", input.Password).MinLen("password", input.Password, 10)
	v.OneOf("role", input.Role, string(sec.RoleAdmin), string(sec.RoleCurator))
	if err := v.Err(); err != nil {
		return nil, err
	}

	if _, err := service.curators.FindByEmail(ctx, input.Email); err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	passwordHash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	curator := &Curator{
		ID:           uuidv7.New(),
		Email:        input.Email,
		DisplayName:  input.DisplayName,
		PasswordHash: passwordHash,
		Role:         sec.UserRole(input.Role),
		IsActive:     true,
	}
	if err := service.curators.Create(ctx, curator); err != nil {
		return nil, err
	}
	return curator, nil
}

// ChangePassword lets an authenticated curator rotate their own password.
func (service *Service) ChangePassword(ctx context.Context, curatorID, currentPassword, newPassword string) error {
	v := &validate.Validator{}
	v.Required("current_password", currentPassword)
	v.Required("new_password", newPassword).MinLen("new_password", newPassword, 10)
	if err := v.Err(); err != nil {
		return err
	}

	curator, err := service.curators.FindByID(ctx, curatorID)
	if err != nil {
		return err
	}

	if !sec.CheckPasswordHash(currentPassword, curator.PasswordHash) {
		return apperr.Unauthorized("Current password is incorrect")
	}

	passwordHash, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("auth_service_change_password_hash_failed: %w", err)
	}
	return service.curators.UpdatePassword(ctx, curatorID, passwordHash)
}

// Me returns the account behind verified claims.
func (service *Service) Me(ctx context.Context, curatorID string) (*Curator, error) {
	return service.curators.FindByID(ctx, curatorID)
}

// issueSession mints an access token and stores a fresh refresh token.
func (service *Service) issueSession(ctx context.Context, curator *Curator) (*Session, error) {
	accessToken, err := service.provider.GenerateAccessToken(
		curator.ID, curator.Email, string(curator.Role), constants.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	refreshToken, err := generateSecureToken(refreshTokenBytes)
	if err != nil {
		return nil, fmt.Errorf("auth_service_refresh_token_failed: %w", err)
	}

	expiresAt := time.Now().Add(constants.RefreshTokenTTL)
	if err := service.tokens.Set(ctx, refreshToken, curator.ID, constants.RefreshTokenTTL); err != nil {
		return nil, fmt.Errorf("auth_service_session_creation_failed: %w", err)
	}

	return &Session{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: expiresAt,
		Curator:               curator,
	}, nil
}

// generateSecureToken returns a hex-encoded random token.
func generateSecureToken(byteLength int) (string, error) {
	buffer := make([]byte, byteLength)
	if _, err := rand.Read(buffer); err != nil {
		return "", err
	}
	return hex.EncodeToString(buffer), nil
}
