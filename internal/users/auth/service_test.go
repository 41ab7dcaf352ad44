// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digital-mary/catalog/internal/platform/apperr"
	"github.com/digital-mary/catalog/internal/platform/sec"
	"github.com/digital-mary/catalog/internal/users/auth"
)

// fakeCuratorRepository serves accounts from a map keyed by ID.
type fakeCuratorRepository struct {
	byID map[string]*auth.Curator
}

func (f *fakeCuratorRepository) FindByEmail(_ context.Context, email string) (*auth.Curator, error) {
	for _, curator := range f.byID {
		if curator.Email == email {
			return curator, nil
		}
	}
	return nil, apperr.NotFound("Curator")
}

func (f *fakeCuratorRepository) FindByID(_ context.Context, id string) (*auth.Curator, error) {
	if curator, ok := f.byID[id]; ok {
		return curator, nil
	}
	return nil, apperr.NotFound("Curator")
}

func (f *fakeCuratorRepository) Create(_ context.Context, curator *auth.Curator) error {
	f.byID[curator.ID] = curator
	return nil
}

func (f *fakeCuratorRepository) UpdatePassword(_ context.Context, id, passwordHash string) error {
	curator, ok := f.byID[id]
	if !ok {
		return apperr.NotFound("Curator")
	}
	curator.PasswordHash = passwordHash
	return nil
}

// fakeTokenRepository is an in-memory refresh token store (TTL ignored).
type fakeTokenRepository struct {
	tokens map[string]string
}

func (f *fakeTokenRepository) Set(_ context.Context, token, curatorID string, _ time.Duration) error {
	f.tokens[token] = curatorID
	return nil
}

func (f *fakeTokenRepository) Get(_ context.Context, token string) (string, error) {
	curatorID, ok := f.tokens[token]
	if !ok {
		return "", apperr.Unauthorized("Invalid or expired refresh token")
	}
	return curatorID, nil
}

func (f *fakeTokenRepository) Delete(_ context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}

// fakeTokenProvider mints predictable access tokens.
type fakeTokenProvider struct{}

func (fakeTokenProvider) GenerateAccessToken(userID, _, _ string, _ time.Duration) (string, error) {
	return "access-" + userID, nil
}

func newTestService(t *testing.T) (*auth.Service, *fakeCuratorRepository, *fakeTokenRepository) {
	t.Helper()

	hash, err := sec.HashPassword("correct horse battery")
	require.NoError(t, err)

	curators := &fakeCuratorRepository{byID: map[string]*auth.Curator{
		"cur-1": {
			ID:           "cur-1",
			Email:        "keeper@digitalmary.org",
			DisplayName:  "Keeper",
			PasswordHash: hash,
			Role:         sec.RoleCurator,
			IsActive:     true,
		},
	}}
	tokens := &fakeTokenRepository{tokens: map[string]string{}}
	return auth.NewService(curators, tokens, fakeTokenProvider{}), curators, tokens
}

func TestLogin_Success(t *testing.T) {
	service, _, tokens := newTestService(t)

	session, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "keeper@digitalmary.org",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	assert.Equal(t, "access-cur-1", session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Equal(t, "cur-1", tokens.tokens[session.RefreshToken])
	assert.True(t, session.RefreshTokenExpiresAt.After(time.Now()))
}

/*
TestLogin_FailuresAreIndistinguishable checks that a wrong password, an
unknown account, and a suspended account all produce the same generic
unauthorized response.
*/
func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	service, curators, _ := newTestService(t)
	curators.byID["cur-2"] = &auth.Curator{
		ID:           "cur-2",
		Email:        "suspended@digitalmary.org",
		PasswordHash: curators.byID["cur-1"].PasswordHash,
		IsActive:     false,
	}

	attempts := []auth.LoginInput{
		{Email: "keeper@digitalmary.org", Password: "wrong"},
		{Email: "nobody@digitalmary.org", Password: "correct horse battery"},
		{Email: "suspended@digitalmary.org", Password: "correct horse battery"},
	}

	for _, input := range attempts {
		_, err := service.Login(context.Background(), input)
		require.Error(t, err, input.Email)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "UNAUTHORIZED", ae.Code)
		assert.Equal(t, "Invalid login credentials", ae.Message)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	service, _, _ := newTestService(t)

	_, err := service.Login(context.Background(), auth.LoginInput{})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

func TestRefreshSession_RotatesToken(t *testing.T) {
	service, _, tokens := newTestService(t)

	first, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "keeper@digitalmary.org",
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	second, err := service.RefreshSession(context.Background(), first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The presented token died during rotation; replaying it fails.
	_, err = service.RefreshSession(context.Background(), first.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)

	assert.Equal(t, "cur-1", tokens.tokens[second.RefreshToken])
}

func TestRefreshSession_SuspendedAccount(t *testing.T) {
	service, curators, tokens := newTestService(t)
	tokens.tokens["stale"] = "cur-1"
	curators.byID["cur-1"].IsActive = false

	_, err := service.RefreshSession(context.Background(), "stale")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}

func TestLogout(t *testing.T) {
	service, _, tokens := newTestService(t)
	tokens.tokens["live"] = "cur-1"

	require.NoError(t, service.Logout(context.Background(), "live"))
	assert.NotContains(t, tokens.tokens, "live")

	// Logging out without a token is still a success.
	require.NoError(t, service.Logout(context.Background(), ""))
}

func TestCreateCurator(t *testing.T) {
	service, curators, _ := newTestService(t)

	created, err := service.CreateCurator(context.Background(), auth.CreateInput{
		Email:       "new@digitalmary.org",
		DisplayName: "New Curator",
		Password:    "long enough secret",
		Role:        "curator",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)
	assert.Equal(t, sec.RoleCurator, created.Role)
	assert.NotEqual(t, "long enough secret", created.PasswordHash)
	assert.Contains(t, curators.byID, created.ID)
}

func TestCreateCurator_Rejections(t *testing.T) {
	service, _, _ := newTestService(t)

	tests := []struct {
		name  string
		input auth.CreateInput
		code  string
	}{
		{
			"duplicate_email",
			auth.CreateInput{Email: "keeper@digitalmary.org", DisplayName: "X", Password: "long enough secret", Role: "curator"},
			"CONFLICT",
		},
		{
			"short_password",
			auth.CreateInput{Email: "a@b.org", DisplayName: "X", Password: "short", Role: "curator"},
			"VALIDATION_ERROR",
		},
		{
			"unknown_role",
			auth.CreateInput{Email: "a@b.org", DisplayName: "X", Password: "long enough secret", Role: "visitor"},
			"VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateCurator(context.Background(), tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.code, apperr.As(err).Code)
		})
	}
}

func TestChangePassword(t *testing.T) {
	service, curators, _ := newTestService(t)

	err := service.ChangePassword(context.Background(), "cur-1", "correct horse battery", "a brand new secret")
	require.NoError(t, err)
	assert.True(t, sec.CheckPasswordHash("a brand new secret", curators.byID["cur-1"].PasswordHash))

	err = service.ChangePassword(context.Background(), "cur-1", "wrong current", "another new secret")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}
