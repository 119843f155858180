package handler

import (
	"crowdledger/internal/core"
	"crowdledger/internal/oauth"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

var (
	SignIn   = "GET /api/auth/signin/google"
	Callback = "GET /api/auth/callback/google"
	Session  = "GET /api/auth/session"
	SignOut  = "POST /api/auth/signout"
)

const stateTTL = 10 * time.Minute

type AuthOpts struct {
	SessionTTL time.Duration
	// RedirectURL is where the browser lands after a successful sign in.
	RedirectURL string
}

type AuthHandler struct {
	responder
	provider OAuthProvider
	identity IdentityService
	opts     AuthOpts
}

func NewAuthHandler(logger *zap.SugaredLogger, provider OAuthProvider, identity IdentityService, opts AuthOpts) *AuthHandler {
	if opts.RedirectURL == "" {
		opts.RedirectURL = "/"
	}
	return &AuthHandler{
		responder: responder{logs: logger},
		provider:  provider,
		identity:  identity,
		opts:      opts,
	}
}

func (h *AuthHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	state, err := oauth.NewState()
	if err != nil {
		h.respond(w, Response{
			Message: "Could not start sign in",
			Error:   oopsErr,
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to generate oauth state",
			"error", err,
			"handler", SignIn,
			"request_id", requestId)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     StateCookie,
		Value:    state,
		Path:     "/api/auth",
		MaxAge:   int(stateTTL.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.provider.AuthCodeURL(state), http.StatusFound)
}

func (h *AuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	query := r.URL.Query()

	stateCookie, err := r.Cookie(StateCookie)
	if err != nil || stateCookie.Value == "" || stateCookie.Value != query.Get("state") {
		h.respond(w, Response{
			Message: "Sign in failed",
			Error:   "invalid oauth state",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("oauth state mismatch",
			"handler", Callback,
			"request_id", requestId)
		return
	}
	h.clearCookie(w, r, StateCookie, "/api/auth")

	if providerErr := query.Get("error"); providerErr != "" {
		h.respond(w, Response{
			Message: "Sign in denied",
			Error:   providerErr,
		}, http.StatusForbidden,
			requestId)
		return
	}

	profile, err := h.provider.Exchange(r.Context(), query.Get("code"))
	if err != nil {
		h.respond(w, Response{
			Message: "Sign in failed",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to exchange authorization code",
			"error", err,
			"handler", Callback,
			"request_id", requestId)
		return
	}

	token, err := h.identity.SignIn(r.Context(), core.Profile{
		Email: profile.Email,
		Name:  profile.Name,
		Image: profile.Picture,
	})
	if err != nil {
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrSignInDenied) {
			httpCode = http.StatusForbidden
		}
		h.respond(w, Response{
			Message: "Sign in denied",
		}, httpCode,
			requestId)
		h.logs.Errorw("sign in failed",
			"error", err,
			"email", profile.Email,
			"handler", Callback,
			"request_id", requestId)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.opts.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.opts.RedirectURL, http.StatusFound)
}

func (h *AuthHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	session, err := h.identity.Session(r.Context(), sessionToken(r))
	if err != nil {
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUnauthorized) {
			httpCode = http.StatusUnauthorized
		}
		h.respond(w, Response{
			Message: "No active session",
			Error:   err.Error(),
		}, httpCode,
			requestId)
		return
	}

	h.respond(w, session, http.StatusOK, requestId)
}

func (h *AuthHandler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	h.clearCookie(w, r, SessionCookie, "/")
	h.respond(w, Response{
		Message: "Signed out",
	}, http.StatusOK, requestID(r))
}

func (h *AuthHandler) clearCookie(w http.ResponseWriter, r *http.Request, name, path string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}
