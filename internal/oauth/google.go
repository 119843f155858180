package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
)

const (
	googleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"
)

var ErrEmailMissing error = errors.New("provider profile has no email")

// Profile is the identity the provider vouches for after a successful exchange.
type Profile struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

type GoogleOpts struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string

	// endpoint overrides, the Google endpoints are used when empty
	AuthURL     string
	TokenURL    string
	UserInfoURL string
}

type Google struct {
	config      *oauth2.Config
	userInfoURL string
}

func NewGoogle(opts GoogleOpts) *Google {
	endpoint := oauth2.Endpoint{
		AuthURL:  orDefault(opts.AuthURL, googleAuthURL),
		TokenURL: orDefault(opts.TokenURL, googleTokenURL),
	}

	return &Google{
		config: &oauth2.Config{
			ClientID:     opts.ClientID,
			ClientSecret: opts.ClientSecret,
			RedirectURL:  opts.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     endpoint,
		},
		userInfoURL: orDefault(opts.UserInfoURL, googleUserInfoURL),
	}
}

func (g *Google) AuthCodeURL(state string) string {
	return g.config.AuthCodeURL(state)
}

// Exchange trades an authorization code for tokens and loads the user profile.
func (g *Google) Exchange(ctx context.Context, code string) (Profile, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return Profile{}, fmt.Errorf("exchange code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.userInfoURL, nil)
	if err != nil {
		return Profile{}, fmt.Errorf("build userinfo request: %w", err)
	}

	resp, err := g.config.Client(ctx, token).Do(req)
	if err != nil {
		return Profile{}, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Profile{}, fmt.Errorf("fetch userinfo: status %d: %s", resp.StatusCode, body)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return Profile{}, fmt.Errorf("decode userinfo: %w", err)
	}

	if profile.Email == "" {
		return Profile{}, ErrEmailMissing
	}
	return profile, nil
}

// NewState returns a random value for the OAuth state parameter.
func NewState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
