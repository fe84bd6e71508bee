package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"career-compass/internal/domain/user"
	"career-compass/internal/pkg/jwt"
	"career-compass/internal/repository"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternal            = errors.New("internal error")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

// Profile is what the identity provider vouches for. Email is the only field
// the rest of the system keys on.
type Profile struct {
	Email   string
	Name    string
	Picture string
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthUsecase interface {
	LoginWithGoogle(ctx context.Context, p Profile) (user.User, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

type Service struct {
	users  repository.UserRepository
	tokens jwt.Service

	now func() time.Time
}

func NewService(users repository.UserRepository, tokens jwt.Service) *Service {
	return &Service{users: users, tokens: tokens, now: time.Now}
}

// LoginWithGoogle upserts the user row for a verified Google profile: first
// sign-in inserts with login_count 1, later sign-ins bump the count and
// refresh last_login and picture.
func (s *Service) LoginWithGoogle(ctx context.Context, p Profile) (user.User, TokenPair, error) {
	email := normalizeEmail(p.Email)
	if email == "" {
		return user.User{}, TokenPair{}, ErrInvalidInput
	}

	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = "User"
	}

	now := s.now()
	existing, err := s.users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, user.ErrNotFound):
		existing = user.User{
			Email:      email,
			Name:       name,
			Picture:    p.Picture,
			Role:       user.DefaultRole,
			LastLogin:  now,
			LoginCount: 1,
		}
		if err := s.users.Create(ctx, existing); err != nil {
			return user.User{}, TokenPair{}, ErrInternal
		}
	case err != nil:
		return user.User{}, TokenPair{}, ErrInternal
	default:
		existing.LoginCount++
		existing.Picture = p.Picture
		existing.LastLogin = now
		if err := s.users.RecordLogin(ctx, email, p.Picture, existing.LoginCount, now); err != nil {
			return user.User{}, TokenPair{}, ErrInternal
		}
	}

	pair, err := s.issuePair(email)
	if err != nil {
		return user.User{}, TokenPair{}, ErrInternal
	}
	return existing, pair, nil
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	_ = ctx

	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenPair{}, ErrRefreshTokenExpired
		}
		return TokenPair{}, ErrInvalidRefreshToken
	}
	if !s.tokens.IsRefreshToken(claims) {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	pair, err := s.issuePair(claims.Email)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	return pair, nil
}

func (s *Service) issuePair(email string) (TokenPair, error) {
	access, err := s.tokens.GenerateAccessToken(email)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(email)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
