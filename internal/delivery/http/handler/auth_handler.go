package handler

import (
	"errors"
	"strings"

	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/infrastructure/oauth"
	"career-compass/internal/pkg/response"
	ucauth "career-compass/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AuthHandler struct {
	uc       ucauth.AuthUsecase
	provider oauth.Provider
	states   oauth.StateStore
}

func NewAuthHandler(uc ucauth.AuthUsecase, provider oauth.Provider, states oauth.StateStore) *AuthHandler {
	return &AuthHandler{uc: uc, provider: provider, states: states}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/google/login", h.GoogleLogin)
	r.Get("/google/callback", h.GoogleCallback)
	r.Post("/refresh", h.Refresh)
}

func (h *AuthHandler) GoogleLogin(c fiber.Ctx) error {
	state := uuid.NewString()
	if err := h.states.Put(c.Context(), state); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return c.Redirect().Status(fiber.StatusTemporaryRedirect).To(h.provider.AuthURL(state))
}

func (h *AuthHandler) GoogleCallback(c fiber.Ctx) error {
	state := strings.TrimSpace(c.Query("state"))
	code := strings.TrimSpace(c.Query("code"))
	if state == "" || code == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, nil)
	}
	if !h.states.Take(c.Context(), state) {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid login state", nil, nil)
	}

	profile, err := h.provider.FetchProfile(c.Context(), code)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadGateway, "Sign-in failed", nil, err)
	}

	usr, pair, err := h.uc.LoginWithGoogle(c.Context(), ucauth.Profile{
		Email:   profile.Email,
		Name:    profile.Name,
		Picture: profile.Picture,
	})
	if err != nil {
		if errors.Is(err, ucauth.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	data := map[string]any{
		"user":          usr,
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	tok, ok := bearerFromAuthorizationHeader(c.Get("Authorization"))
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	pair, err := h.uc.Refresh(c.Context(), tok)
	if err != nil {
		if errors.Is(err, ucauth.ErrRefreshTokenExpired) {
			return middleware.NewAppError(fiber.StatusUnauthorized, "Refresh token expired", nil, err)
		}
		if errors.Is(err, ucauth.ErrInvalidRefreshToken) {
			return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid refresh token", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, pair)
}

func bearerFromAuthorizationHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	if tok == "" {
		return "", false
	}
	return tok, true
}
