package core

import (
	"context"
	"crowdledger/internal/repository"
	tokenIssuer "crowdledger/pkg/jwt"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Identity bridges federated sign-in to the local user records.
type Identity struct {
	logs       *zap.SugaredLogger
	repo       Repository
	jwtIssuer  JWTIssuer
	sessionTTL time.Duration
}

func NewIdentity(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, sessionTTL time.Duration) *Identity {
	return &Identity{
		logs:       logger,
		repo:       repo,
		jwtIssuer:  jwt,
		sessionTTL: sessionTTL,
	}
}

// SignIn makes sure a user exists for the profile email and issues a session
// token for it. An existing user is left untouched.
func (i *Identity) SignIn(ctx context.Context, profile Profile) (string, error) {
	email := strings.TrimSpace(profile.Email)
	if email == "" {
		return "", fmt.Errorf("%w: profile has no email", ErrSignInDenied)
	}

	user, created, err := i.repo.CreateUserIfMissing(ctx, repository.User{
		Email: email,
		Name:  profile.Name,
		Image: profile.Image,
	})
	if err != nil {
		i.logs.Errorw("sign in failed", "error", err, "email", email)
		return "", fmt.Errorf("%w: create user if missing: %w", ErrSignInDenied, err)
	}

	if created {
		i.logs.Infow("new user created", "email", user.Email)
	} else {
		i.logs.Infow("existing user signed in", "email", user.Email)
	}

	token := i.jwtIssuer.Generate(tokenIssuer.TokenInfo{
		Subject:    user.Email,
		Name:       profile.Name,
		Image:      profile.Image,
		Expiration: i.sessionTTL,
	})
	signed, err := i.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// Caller resolves the identity a session token was issued for.
func (i *Identity) Caller(ctx context.Context, token string) (ProviderSession, error) {
	if token == "" {
		return ProviderSession{}, fmt.Errorf("%w: no session", ErrUnauthorized)
	}

	claims, err := i.jwtIssuer.Validate(token)
	if err != nil {
		return ProviderSession{}, fmt.Errorf("%w: validate jwt token: %w", ErrUnauthorized, err)
	}

	email, ok := tokenIssuer.StringClaim(claims, "sub")
	if !ok {
		return ProviderSession{}, fmt.Errorf("%w: session has no subject", ErrUnauthorized)
	}

	session := ProviderSession{Email: email}
	session.Name, _ = tokenIssuer.StringClaim(claims, "name")
	session.Image, _ = tokenIssuer.StringClaim(claims, "picture")
	if exp, ok := claims["exp"].(float64); ok {
		session.Expires = time.Unix(int64(exp), 0).UTC()
	}

	return session, nil
}

// Session materializes the session for token, overlaying the stored user.
// A store failure yields the provider session as is.
func (i *Identity) Session(ctx context.Context, token string) (SessionView, error) {
	base, err := i.Caller(ctx, token)
	if err != nil {
		return SessionView{}, err
	}

	user, err := i.repo.GetUserByEmail(ctx, base.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			i.logs.Warnw("session without stored user", "email", base.Email)
		} else {
			i.logs.Errorw("failed to load user data for session", "error", err, "email", base.Email)
		}
		return MergeSession(base, nil), nil
	}

	return MergeSession(base, &user), nil
}

// MergeSession overlays the stored user onto the provider session. The id and
// verification flag always come from the store; name, email and image fall
// back to the provider values when the stored ones are empty.
func MergeSession(base ProviderSession, user *repository.User) SessionView {
	view := SessionView{
		Email:   base.Email,
		Name:    base.Name,
		Image:   base.Image,
		Expires: base.Expires,
	}
	if user == nil {
		return view
	}

	view.ID = user.ID
	view.IsVerified = user.IsVerified
	if user.Name != "" {
		view.Name = user.Name
	}
	if user.Email != "" {
		view.Email = user.Email
	}
	if user.Image != "" {
		view.Image = user.Image
	}
	return view
}
