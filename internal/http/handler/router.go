package handler

import (
	"crowdledger/internal/http/handler/middleware"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter mounts every route behind request id, access log and panic recovery.
func NewRouter(logger *zap.SugaredLogger, campaigns *CampaignHandler, auth *AuthHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.NewRequestIDMiddleware().RequestID)
	r.Use(middleware.NewLoggingMiddleware(logger).Logging)
	r.Use(chimw.Recoverer)

	handle(r, CreateCampaign, campaigns.HandleCreateCampaign)
	handle(r, ListCampaigns, campaigns.HandleListCampaigns)
	handle(r, GetCampaign, campaigns.HandleGetCampaign)
	handle(r, CampaignOnChain, campaigns.HandleCampaignOnChain)
	handle(r, LedgerStatus, campaigns.HandleLedgerStatus)
	handle(r, Health, campaigns.HandleHealth)

	handle(r, SignIn, auth.HandleSignIn)
	handle(r, Callback, auth.HandleCallback)
	handle(r, Session, auth.HandleSession)
	handle(r, SignOut, auth.HandleSignOut)

	return r
}

// handle registers a "METHOD /path" route.
func handle(r chi.Router, route string, fn http.HandlerFunc) {
	method, pattern, _ := strings.Cut(route, " ")
	r.Method(method, pattern, fn)
}
