// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/digital-mary/catalog/internal/platform/apperr"
	"github.com/digital-mary/catalog/internal/platform/constants"
	"github.com/digital-mary/catalog/internal/platform/middleware"
	"github.com/digital-mary/catalog/internal/platform/request"
	"github.com/digital-mary/catalog/internal/platform/respond"
	"github.com/digital-mary/catalog/internal/platform/sec"
)

// Handler implements the authentication HTTP endpoints.
//
// The refresh token travels in an HttpOnly cookie scoped to the auth
// routes; only the short-lived access token is exposed to scripts.
type Handler struct {
	authService *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a router with the session lifecycle endpoints. Account
// provisioning and password changes live on the admin surface instead.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/login", handler.login)
	router.Post("/refresh", handler.refresh)
	router.Post("/logout", handler.logout)

	return router
}

// AdminRoutes mounts the account endpoints behind curator authentication.
// Provisioning new accounts additionally requires the admin role.
func (handler *Handler) AdminRoutes(router chi.Router) {
	router.Get("/me", handler.me)
	router.Post("/change-password", handler.changePassword)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Post("/curators", handler.createCurator)
	})
}

func (handler *Handler) login(writer http.ResponseWriter, httpRequest *http.Request) {
	var input LoginInput
	if err := request.DecodeJSON(httpRequest, &input); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	session, err := handler.authService.Login(httpRequest.Context(), input)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	setRefreshCookie(writer, session)
	respond.OK(writer, map[string]any{
		"access_token": session.AccessToken,
		"token_type":   "Bearer",
		"expires_in":   int(constants.AccessTokenTTL / time.Second),
		"curator":      session.Curator,
	})
}

func (handler *Handler) refresh(writer http.ResponseWriter, httpRequest *http.Request) {
	cookie, err := httpRequest.Cookie(constants.RefreshTokenCookieName)
	if err != nil || cookie.Value == "" {
		respond.Error(writer, httpRequest, apperr.Unauthorized("Missing refresh token"))
		return
	}

	session, err := handler.authService.RefreshSession(httpRequest.Context(), cookie.Value)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	setRefreshCookie(writer, session)
	respond.OK(writer, map[string]any{
		"access_token": session.AccessToken,
		"token_type":   "Bearer",
		"expires_in":   int(constants.AccessTokenTTL / time.Second),
	})
}

func (handler *Handler) logout(writer http.ResponseWriter, httpRequest *http.Request) {
	if cookie, err := httpRequest.Cookie(constants.RefreshTokenCookieName); err == nil && cookie.Value != "" {
		_ = handler.authService.Logout(httpRequest.Context(), cookie.Value)
	}

	clearRefreshCookie(writer)
	respond.NoContent(writer)
}

func (handler *Handler) me(writer http.ResponseWriter, httpRequest *http.Request) {
	claims, err := request.RequiredClaims(httpRequest)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	curator, err := handler.authService.Me(httpRequest.Context(), claims.UserID)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.OK(writer, curator)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (handler *Handler) changePassword(writer http.ResponseWriter, httpRequest *http.Request) {
	claims, err := request.RequiredClaims(httpRequest)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	var input changePasswordRequest
	if err := request.DecodeJSON(httpRequest, &input); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	err = handler.authService.ChangePassword(
		httpRequest.Context(), claims.UserID, input.CurrentPassword, input.NewPassword)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) createCurator(writer http.ResponseWriter, httpRequest *http.Request) {
	var input CreateInput
	if err := request.DecodeJSON(httpRequest, &input); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	curator, err := handler.authService.CreateCurator(httpRequest.Context(), input)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}
	respond.Created(writer, curator)
}

func setRefreshCookie(writer http.ResponseWriter, session *Session) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.RefreshTokenCookieName,
		Value:    session.RefreshToken,
		Path:     constants.RefreshTokenCookiePath,
		Expires:  session.RefreshTokenExpiresAt,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

func clearRefreshCookie(writer http.ResponseWriter) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.RefreshTokenCookieName,
		Value:    "",
		Path:     constants.RefreshTokenCookiePath,
		MaxAge:   -1,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
