package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"career-compass/internal/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var ErrExchangeFailed = errors.New("oauth exchange failed")

const userinfoEndpoint = "https://www.googleapis.com/oauth2/v1/userinfo"

// Profile is the slice of the Google userinfo payload the application needs.
type Profile struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type Provider interface {
	AuthURL(state string) string
	FetchProfile(ctx context.Context, code string) (Profile, error)
}

type Google struct {
	cfg     *oauth2.Config
	timeout time.Duration
}

func NewGoogle(cfg config.OAuthConfig, redirectURL string) *Google {
	return &Google{
		cfg: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  strings.TrimSpace(redirectURL),
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		timeout: 10 * time.Second,
	}
}

func (g *Google) AuthURL(state string) string {
	if g == nil || g.cfg == nil {
		return ""
	}
	return g.cfg.AuthCodeURL(state)
}

// FetchProfile exchanges the authorization code and reads the userinfo
// endpoint. Token mechanics are the library's business.
func (g *Google) FetchProfile(ctx context.Context, code string) (Profile, error) {
	if g == nil || g.cfg == nil {
		return Profile{}, ErrExchangeFailed
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	tok, err := g.cfg.Exchange(ctx, code)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrExchangeFailed, err)
	}

	client := g.cfg.Client(ctx, tok)
	resp, err := client.Get(userinfoEndpoint)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrExchangeFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Profile{}, fmt.Errorf("%w: userinfo status=%d body=%s", ErrExchangeFailed, resp.StatusCode, strings.TrimSpace(string(rb)))
	}

	var p Profile
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("%w: decode: %v", ErrExchangeFailed, err)
	}
	return p, nil
}

var _ Provider = (*Google)(nil)
